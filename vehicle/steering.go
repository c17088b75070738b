package vehicle

// Ackermann distributes the global steering angle to the front wheels with
// fixed asymmetric ratios. The wheel on the inside of the turn gets
// InnerRatio, the outside wheel OuterRatio. Rear wheels never steer.
//
// A positive steering angle turns toward -X, which puts the left (-X) wheel
// on the inside.
type Ackermann struct {
	InnerRatio float64
	OuterRatio float64
}

// DefaultAckermann returns the stock 1.20 / 0.80 split.
func DefaultAckermann() Ackermann {
	return Ackermann{InnerRatio: 1.20, OuterRatio: 0.80}
}

// Delta returns the steering rotation in degrees for one wheel.
func (a Ackermann) Delta(steer float64, isLeft, isFront bool) float64 {
	if !isFront {
		return 0
	}
	switch {
	case steer > 0:
		if isLeft {
			return steer * a.InnerRatio
		}
		return steer * a.OuterRatio
	case steer < 0:
		if isLeft {
			return steer * a.OuterRatio
		}
		return steer * a.InnerRatio
	}
	return 0
}
