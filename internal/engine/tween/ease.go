// Package tween interpolates camera poses over time or toward a moving goal.
package tween

import "fmt"

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float32) float32

// Linear is the identity ease.
func Linear(t float32) float32 { return t }

// Power1Out decelerates quadratically.
func Power1Out(t float32) float32 {
	inv := 1 - t
	return 1 - inv*inv
}

// Power2InOut accelerates then decelerates cubically.
func Power2InOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	inv := -2*t + 2
	return 1 - inv*inv*inv/2
}

// EaseByName resolves a configured ease name.
func EaseByName(name string) (Ease, error) {
	switch name {
	case "", "power1.out":
		return Power1Out, nil
	case "none", "linear":
		return Linear, nil
	case "power2.inOut":
		return Power2InOut, nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
