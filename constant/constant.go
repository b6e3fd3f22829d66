package constant

const (
	DEFAULT_FRAME_RATE   = 60
	DEFAULT_WINDOW_TITLE = "maygo"
	NO_WINDOW            = 0xffffffff
	PACER_REFRESH_STEP   = 0.001 // seconds
	AUDIO_FREQ           = 48000
	CHANNELS             = 2
	AUDIO_SAMPLES        = 1024
	AUDIO_VOICES         = 16
)
