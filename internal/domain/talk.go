package domain

import (
	"fmt"
	"time"
)

const LightningDuration = 5 * time.Minute

type Talk struct {
	Name     string
	Duration time.Duration
}

func (t Talk) IsLightning() bool {
	return t.Duration == LightningDuration
}

// Label renders the duration the way it is written in talk lists: "lightning" or "<minutes>min".
func (t Talk) Label() string {
	if t.IsLightning() {
		return "lightning"
	}

	return fmt.Sprintf("%dmin", int64(t.Duration/time.Minute))
}

func (t Talk) seconds() int {
	return int(t.Duration / time.Second)
}

func TotalDuration(talks []Talk) time.Duration {
	var total time.Duration
	for _, talk := range talks {
		total += talk.Duration
	}
	return total
}
