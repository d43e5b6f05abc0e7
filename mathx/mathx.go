// Package mathx provides small numeric helpers: clamping, interpolation and
// the Unity-style SmoothDamp used for animating values towards a target.
package mathx

import (
	"cmp"
	"math"
)

// Number is the set of built-in integer and floating-point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Clamp limits n to [lo, hi]. When lo > hi the result is hi.
func Clamp[T cmp.Ordered](n, lo, hi T) T {
	return min(hi, max(lo, n))
}

// Sum returns the sum of values, or zero when there are none.
func Sum[T Number](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Lerp linearly interpolates between lo and hi. t is clamped to [0, 1].
//
//	Lerp(0, 2, 0.5) // → 1
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*Clamp(t, 0, 1)
}

// Magnitude returns the length of the vector (a, b).
func Magnitude(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// Remap maps n from [inMin, inMax] onto [outMin, outMax], clamping to the
// output range.
//
//	Remap(0.5, 0, 1, 200, 400) // → 300
func Remap(n, inMin, inMax, outMin, outMax float64) float64 {
	return Lerp(outMin, outMax, (n-inMin)/(inMax-inMin))
}

// SmoothDamp gradually moves current towards target, like a critically
// damped spring that never overshoots. velocity is the velocity returned by
// the previous call (start with 0); smoothTime is roughly the time to reach
// the target; maxSpeed caps the speed; deltaTime is the elapsed time in
// seconds. It returns the new value and the new velocity.
//
// Based on Game Programming Gems 4, chapter 1.10.
func SmoothDamp(current, target, velocity, smoothTime, maxSpeed, deltaTime float64) (smoothed, newVelocity float64) {
	smoothTime = max(0.0001, smoothTime)
	omega := 2.0 / smoothTime

	x := omega * deltaTime
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (velocity + omega*change) * deltaTime
	newVelocity = (velocity - omega*temp) * exp
	smoothed = target + (change+temp)*exp

	// Prevent overshooting.
	if (originalTo-current > 0.0) == (smoothed > originalTo) {
		smoothed = originalTo
		newVelocity = (smoothed - originalTo) / deltaTime
	}
	return smoothed, newVelocity
}
