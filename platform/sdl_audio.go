//go:build sdl2

package platform

// #include <stdlib.h>
// typedef unsigned char Uint8;
// void onAudioPlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	pointer "github.com/mattn/go-pointer"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/maygo/audio"
	"github.com/ushitora-anqou/maygo/constant"
)

// sdlAudio feeds an SDL float32 stereo device from a Mixer.
type sdlAudio struct {
	device   sdl.AudioDeviceID
	freq     int
	mixer    *audio.Mixer
	userdata unsafe.Pointer
}

func openSDLAudio(opts Options) (*sdlAudio, error) {
	a := &sdlAudio{
		freq:  opts.AudioFreq,
		mixer: audio.NewMixer(constant.CHANNELS, opts.AudioVoices),
	}
	a.userdata = pointer.Save(a)

	device, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     int32(opts.AudioFreq),
		Format:   sdl.AUDIO_F32,
		Channels: constant.CHANNELS,
		Samples:  uint16(opts.AudioSamples),
		Callback: sdl.AudioCallback(C.onAudioPlayback),
		UserData: a.userdata,
	}, nil, 0)
	if err != nil {
		pointer.Unref(a.userdata)
		return nil, err
	}
	a.device = device
	sdl.PauseAudioDevice(device, false)

	return a, nil
}

//export onAudioPlayback
func onAudioPlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	n := int(length) / 4
	buf := unsafe.Slice((*float32)(unsafe.Pointer(stream)), n)
	a := pointer.Restore(userdata).(*sdlAudio)
	a.mixer.Fill(buf)
}

// PlayFile loads a WAV file, converts it to the device format and queues it
// as a new voice.
func (a *sdlAudio) PlayFile(path string) error {
	data, spec := sdl.LoadWAV(path)
	if spec == nil {
		return fmt.Errorf("load %s: %v", path, sdl.GetError())
	}
	defer sdl.FreeWAV(data)

	pcm, err := convertToDevice(data, spec, a.freq)
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}
	return a.mixer.Add(decodeF32(pcm))
}

// convertToDevice resamples raw audio in the given spec to float32 stereo
// at freq. SDL converts in place, so the work buffer lives in C memory and
// is sized len(data)*LenMult.
func convertToDevice(data []byte, spec *sdl.AudioSpec, freq int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var cvt sdl.AudioCVT
	if _, err := sdl.BuildAudioCVT(&cvt,
		spec.Format, spec.Channels, int(spec.Freq),
		sdl.AUDIO_F32, constant.CHANNELS, freq,
	); err != nil {
		return nil, err
	}

	size := len(data) * int(cvt.LenMult)
	buf := C.malloc(C.size_t(size))
	if buf == nil {
		return nil, fmt.Errorf("out of memory for %d bytes", size)
	}
	defer C.free(buf)
	copy(unsafe.Slice((*byte)(buf), size), data)

	cvt.Buf = buf
	cvt.Len = int32(len(data))
	if err := sdl.ConvertAudio(&cvt); err != nil {
		return nil, err
	}
	out := make([]byte, cvt.LenCVT)
	copy(out, unsafe.Slice((*byte)(buf), int(cvt.LenCVT)))
	return out, nil
}

func decodeF32(raw []byte) []float32 {
	samples := make([]float32, len(raw)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return samples
}

func (a *sdlAudio) Queue(samples []float32) error {
	return a.mixer.Add(samples)
}

func (a *sdlAudio) Close() error {
	if a.userdata == nil {
		return nil
	}
	sdl.CloseAudioDevice(a.device)
	pointer.Unref(a.userdata)
	a.userdata = nil
	a.mixer.Reset()
	return nil
}
