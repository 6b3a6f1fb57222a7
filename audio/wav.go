package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// wavHeader is the canonical 44-byte RIFF/WAVE header for PCM data.
type wavHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32
}

const headerSize = 44

// EncodeWAV serializes mono 16-bit PCM samples into a WAV byte stream.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	numChannels := uint16(1)
	bitsPerSample := uint16(16)
	dataSize := uint32(len(samples) * 2)

	header := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample) / 8,
		BlockAlign:    numChannels * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(samples)*2))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeWAV parses a WAV byte stream into a Clip. Only mono 16-bit PCM is
// accepted, which is the exact format requested from the synthesizer.
func DecodeWAV(data []byte) (Clip, error) {
	if len(data) < headerSize {
		return Clip{}, fmt.Errorf("WAV data too short: need at least %d bytes, got %d", headerSize, len(data))
	}

	var header wavHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return Clip{}, fmt.Errorf("failed to read WAV header: %w", err)
	}

	if string(header.ChunkID[:]) != "RIFF" || string(header.Format[:]) != "WAVE" {
		return Clip{}, fmt.Errorf("invalid WAV stream: missing RIFF/WAVE markers")
	}
	if string(header.Subchunk1ID[:]) != "fmt " {
		return Clip{}, fmt.Errorf("invalid WAV stream: missing fmt chunk")
	}
	if string(header.Subchunk2ID[:]) != "data" {
		return Clip{}, fmt.Errorf("invalid WAV stream: missing data chunk")
	}
	if header.AudioFormat != 1 {
		return Clip{}, fmt.Errorf("unsupported audio format %d: only PCM is supported", header.AudioFormat)
	}
	if header.BitsPerSample != 16 {
		return Clip{}, fmt.Errorf("unsupported bit depth %d: only 16-bit is supported", header.BitsPerSample)
	}
	if header.NumChannels != 1 {
		return Clip{}, fmt.Errorf("unsupported channel count %d: only mono is supported", header.NumChannels)
	}

	numSamples := int(header.Subchunk2Size) / 2
	if len(data) < headerSize+numSamples*2 {
		return Clip{}, fmt.Errorf("WAV data truncated: header declares %d samples", numSamples)
	}

	samples := make([]int16, numSamples)
	payload := bytes.NewReader(data[headerSize : headerSize+numSamples*2])
	if err := binary.Read(payload, binary.LittleEndian, samples); err != nil {
		return Clip{}, fmt.Errorf("failed to read audio data: %w", err)
	}

	return Clip{Samples: samples, SampleRate: int(header.SampleRate)}, nil
}
