package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/wire"
)

func main() {
	outFlag := flag.String("o", "out.gif", "Output GIF file")
	widthFlag := flag.Int("width", 0, "LEDs per row (0 for a single row)")
	sizeFlag := flag.Int("size", draw.DefaultOptions.Size, "LED size in pixels")
	spacingFlag := flag.Int("spacing", draw.DefaultOptions.Spacing, "Space between LEDs in pixels")
	scaleFlag := flag.Int("scale", 1, "Scale the frames up")
	reversedFlag := flag.Bool("reversed", false, "Draw right to left")
	squareFlag := flag.Bool("square", false, "Draw square LEDs")
	captionFlag := flag.Bool("caption", true, "Caption frames with their time")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <recording.jsonl>\n", os.Args[0])
		os.Exit(1)
	}

	opts := draw.DefaultOptions
	opts.Width = *widthFlag
	opts.Size = *sizeFlag
	opts.Spacing = *spacingFlag
	opts.Reversed = *reversedFlag
	if *squareFlag {
		opts.Shape = draw.Square
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	defer in.Close()

	p, err := wire.NewPlayer(in)
	if err != nil {
		fatal(err)
	}

	var (
		anim draw.Animation
		last *wire.Frame
		img  image.Image
	)
	add := func(next time.Duration) {
		anim.Add(img, next-last.T)
	}
	for {
		frame, err := p.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			fatal(err)
		}
		if last != nil {
			add(frame.T)
		}

		rgba := draw.Preview(frame.Pix, &opts)
		if *scaleFlag > 1 {
			rgba = draw.Scale(rgba, *scaleFlag)
		}
		if *captionFlag {
			if rgba, err = draw.Caption(rgba, fmt.Sprintf("t=%.2fs", frame.T.Seconds()), 12, color.White, color.Black); err != nil {
				fatal(err)
			}
		}
		img = rgba
		last = &frame
	}
	if last != nil {
		// The last frame has no successor, hold it for 100ms.
		add(last.T + 100*time.Millisecond)
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		fatal(err)
	}
	if err = anim.Encode(out); err != nil {
		_ = out.Close()
		fatal(err)
	}
	if err = out.Close(); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d frames of %d LEDs to %s\n", anim.Len(), p.Leds(), *outFlag)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
