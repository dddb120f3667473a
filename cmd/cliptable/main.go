// Command cliptable prints which frame a profile's clip shows over time.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/cardwalk/anim"
	"github.com/milk9111/cardwalk/prefabs"
	"golang.design/x/clipboard"
)

func main() {
	profile := flag.String("profile", "love", "profile name in prefabs/profiles")
	clipName := flag.String("clip", "", "clip to sample (default: every clip)")
	step := flag.Float64("step", 0.05, "sampling step in seconds")
	cycles := flag.Float64("cycles", 1.5, "how many clip cycles to sample")
	copyOut := flag.Bool("copy", false, "also copy the table to the clipboard")
	list := flag.Bool("list", false, "list the shipped profiles and exit")
	flag.Parse()

	if *list {
		names, err := prefabs.ProfileNames()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	p, _, err := prefabs.LoadProfile(*profile)
	if err != nil {
		log.Fatal(err)
	}

	names := p.Clips.Names()
	if *clipName != "" {
		if !p.Clips.Has(*clipName) {
			log.Fatalf("cliptable: profile %q has no clip %q (have %v)", *profile, *clipName, names)
		}
		names = []string{*clipName}
	}

	var buf bytes.Buffer
	out := io.MultiWriter(os.Stdout, &buf)
	for _, name := range names {
		c, _ := p.Clips.Clip(name)
		if err := writeTable(out, c, *step, *cycles); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(out)
	}

	if *copyOut {
		if err := clipboard.Init(); err != nil {
			log.Fatalf("cliptable: clipboard: %v", err)
		}
		clipboard.Write(clipboard.FmtText, buf.Bytes())
	}
}

func writeTable(w io.Writer, c anim.Clip, step, cycles float64) error {
	if step <= 0 {
		return fmt.Errorf("cliptable: step must be positive")
	}
	mode := "one-shot"
	if c.Repeat {
		mode = "repeat"
	}
	fmt.Fprintf(w, "%s (%s, cycle %.3fs, %d frames)\n", c.Name, mode, c.Cycle, len(c.Frames))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "elapsed\tcycle t\tframe\tatlas u,v\tdisplacement")
	end := c.Cycle * cycles
	for i := 0; ; i++ {
		t := float64(i) * step
		if t > end+1e-9 {
			break
		}
		idx := anim.FrameIndex(c, t)
		f := anim.Sample(c, t)
		frame := "-"
		if idx >= 0 {
			frame = fmt.Sprint(idx)
		}
		fmt.Fprintf(tw, "%.3f\t%.3f\t%s\t%.3f,%.3f\t%.3f,%.3f,%.3f\n",
			t, anim.CycleTime(c, t), frame, f.Atlas.U, f.Atlas.V,
			f.Displacement.X, f.Displacement.Y, f.Displacement.Z)
	}
	return tw.Flush()
}
