package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/ushitora-anqou/maygo"
	"github.com/ushitora-anqou/maygo/config"
	"github.com/ushitora-anqou/maygo/constant"
	"github.com/ushitora-anqou/maygo/input"
	"github.com/ushitora-anqou/maygo/util"
)

type demoWindow struct {
	id    uint32
	title string
	color func(frame int) maygo.Color
}

func run() error {
	configPath := flag.String("config", "", "path to the YAML config (default: user config dir)")
	frames := flag.Int("frames", 0, "stop after this many frames (0: run until every window is closed)")
	dumpMetrics := flag.Bool("metrics", false, "print the session metrics on exit")
	flag.Parse()

	if filename := os.Getenv("MAYGO_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	s, err := maygo.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	log := util.Logger()

	windows := []*demoWindow{
		{title: "Hello Everynyan", color: func(int) maygo.Color { return maygo.MayGray }},
		{title: "Hello Somenyan", color: func(frame int) maygo.Color {
			return maygo.RGB(uint8(frame), 0x40, 0x80)
		}},
	}
	for _, w := range windows {
		id, err := s.CreateWindow(w.title, 640, 480)
		if err != nil {
			return err
		}
		w.id = id
	}

	for frame := 0; !s.AllWindowsClosed(); frame++ {
		if *frames > 0 && frame >= *frames {
			break
		}
		s.BeginFrame()
		if s.Terminated() {
			break
		}

		if err := stepWindows(s, windows, frame); err != nil {
			return err
		}
		s.EndFrame()
	}

	log.Info("Demo finished", zap.Float64("frame_rate", s.FrameRate()))

	if *dumpMetrics && s.Gatherer() != nil {
		families, err := s.Gatherer().Gather()
		if err != nil {
			return err
		}
		enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				return err
			}
		}
	}
	return nil
}

// stepWindows draws one frame into every open window and marks the ones
// that asked to close with NO_WINDOW.
func stepWindows(s *maygo.Session, windows []*demoWindow, frame int) error {
	for _, w := range windows {
		if w.id == constant.NO_WINDOW {
			continue
		}
		s.SelectWindow(w.id)

		closing, err := s.WindowShouldClose()
		if err != nil {
			return err
		}
		esc, err := s.KeyPressed(input.KeyEscape)
		if err != nil {
			return err
		}
		if closing || esc {
			if err := s.CloseCurrentWindow(); err != nil {
				return err
			}
			w.id = constant.NO_WINDOW
			continue
		}

		if err := drawScene(s, w, frame); err != nil {
			return err
		}
	}
	return nil
}

func drawScene(s *maygo.Session, w *demoWindow, frame int) error {
	if err := s.ClearBackground(w.color(frame)); err != nil {
		return err
	}
	width, height, err := s.WindowSize()
	if err != nil {
		return err
	}
	x := int32(frame*4) % width
	if err := s.DrawCircle(x, height/2, 24, maygo.Lime); err != nil {
		return err
	}
	if err := s.DrawRectangleLines(10, 10, width-20, height-20, maygo.RayWhite); err != nil {
		return err
	}
	return s.DrawLine(0, height-1, x, height-1, maygo.Aqua)
}

func main() {
	var err error
	maygo.Main(func() {
		err = run()
	})
	if err != nil {
		util.Logger().Error("maydemo failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
