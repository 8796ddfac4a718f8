// Command tween-plot samples an easing curve to CSV for plotting.
//
// Usage:
//
//	tween-plot -ease bounce-out -from 0 -to 100 -steps 120 > curve.csv
//	tween-plot -list
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/tphakala/go-transform-tween/ease"
)

func main() {
	var (
		easeName = flag.String("ease", "linear", "Curve name (see -list)")
		from     = flag.Float64("from", 0, "Start value")
		to       = flag.Float64("to", 1, "End value")
		steps    = flag.Int("steps", defaultSteps, "Number of samples across [0, 1]")
		output   = flag.String("o", "", "Output file (default stdout)")
		list     = flag.Bool("list", false, "List available curve names and exit")
	)
	flag.Parse()

	if *list {
		for _, typ := range ease.Types() {
			fmt.Println(typ)
		}
		return
	}

	if *steps < minSteps {
		log.Fatalf("steps must be at least %d, got %d", minSteps, *steps)
	}

	typ, err := ease.ParseType(*easeName)
	if err != nil {
		log.Fatalf("unknown curve %q (try -list): %v", *easeName, err)
	}

	fn, err := ease.ForType(typ)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("creating %s: %v", *output, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"t", "value"}); err != nil {
		log.Fatal(err)
	}

	for i := 0; i <= *steps; i++ {
		t := float64(i) / float64(*steps)
		v := fn(*from, *to, t)
		record := []string{
			strconv.FormatFloat(t, 'f', -1, 64),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			log.Fatal(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
}
