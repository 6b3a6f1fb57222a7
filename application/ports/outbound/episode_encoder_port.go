package outbound

// EpisodeEncoderPort converts the assembled WAV timeline file into the final
// distribution format. The encoder owns removal of the input file.
type EpisodeEncoderPort interface {
	Encode(wavFileName string, outputFileName string) error
}
