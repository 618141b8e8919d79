package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/ledstrip/term"
	"github.com/BeatGlow/ledstrip/wire"
)

func main() {
	widthFlag := flag.Int("width", 0, "LEDs per row (0 fits the terminal)")
	reversedFlag := flag.Bool("reversed", false, "Draw right to left")
	loopFlag := flag.Bool("loop", false, "Restart at the end of the recording")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <recording.jsonl>\n", os.Args[0])
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err = screen.Init(); err != nil {
		fatal(err)
	}

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	r := &term.Renderer{
		Y:        1,
		Width:    *widthFlag,
		Reversed: *reversedFlag,
	}
	for {
		if err = play(screen, r, flag.Arg(0), quit); err != nil || !*loopFlag {
			break
		}
	}
	screen.Fini()
	if err != nil && err != errQuit {
		fatal(err)
	}
}

var errQuit = errors.New("quit")

func play(screen tcell.Screen, r *term.Renderer, name string, quit <-chan struct{}) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := wire.NewPlayer(f)
	if err != nil {
		return err
	}

	start := time.Now()
	for {
		frame, err := p.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		select {
		case <-quit:
			return errQuit
		case <-time.After(time.Until(start.Add(frame.T))):
		}

		screen.Clear()
		status := fmt.Sprintf("%s  %d LEDs  t=%s  (q to quit)", name, p.Leds(), frame.T)
		for i, c := range status {
			screen.SetContent(i, 0, c, nil, tcell.StyleDefault)
		}
		r.Draw(screen, frame.Pix)
		screen.Show()
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
