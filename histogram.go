package imghist

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NumBins is the number of buckets per channel. Bucket i covers [i, i+1).
const NumBins = 256

type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the channels in plotting order.
var Channels = [3]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

type Counts [NumBins]int

// Total is the number of pixels counted.
func (c *Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Histogram holds the per-channel intensity frequencies of one image.
type Histogram [3]Counts

func (h *Histogram) Channel(c Channel) *Counts {
	return &h[c]
}

// Compute bins every pixel of img once per channel.
func Compute(img *RGB) *Histogram {
	h := new(Histogram)
	w, ht := img.Rect.Dx(), img.Rect.Dy()
	for y := range ht {
		row := img.Pix[y*img.Stride : y*img.Stride+3*w]
		for i := 0; i < len(row); i += 3 {
			h[Red][row[i]]++
			h[Green][row[i+1]]++
			h[Blue][row[i+2]]++
		}
	}
	return h
}

// BinEdges returns the lower edge of every bucket, used as the x values of
// the plotted series.
func BinEdges() []float64 {
	xs := make([]float64, NumBins)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// ============ SUMMARY ============

type Summary struct {
	Channel Channel
	Total   int
	Mean    float64
	StdDev  float64
	Median  float64
	// Mode is the lowest bucket holding the largest count.
	Mode int
}

func (s Summary) String() string {
	return fmt.Sprintf("%-5s n=%d mean=%.2f std=%.2f median=%.0f mode=%d",
		s.Channel, s.Total, s.Mean, s.StdDev, s.Median, s.Mode)
}

// Summarize treats the bucket counts as weights over the bucket values.
// An empty histogram produces zero statistics.
func (h *Histogram) Summarize() [3]Summary {
	xs := BinEdges()
	var out [3]Summary
	for _, c := range Channels {
		s := Summary{Channel: c, Total: h[c].Total()}
		if s.Total == 0 {
			out[c] = s
			continue
		}
		ws := make([]float64, NumBins)
		for i, v := range h[c] {
			ws[i] = float64(v)
		}
		s.Mean, s.StdDev = stat.MeanStdDev(xs, ws)
		if s.Total == 1 {
			s.StdDev = 0
		}
		s.Median = stat.Quantile(0.5, stat.Empirical, xs, ws)
		s.Mode = floats.MaxIdx(ws)
		out[c] = s
	}
	return out
}
