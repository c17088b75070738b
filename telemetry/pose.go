package telemetry

import (
	"github.com/pthm-cable/garage/rig"
	"github.com/pthm-cable/garage/sim"
)

// PoseRecord is the flat CSV form of a pose snapshot.
type PoseRecord struct {
	Tick          uint64  `csv:"tick"`
	X             float64 `csv:"x"`
	Y             float64 `csv:"y"`
	Z             float64 `csv:"z"`
	Heading       float64 `csv:"heading"`
	SteerAngle    float64 `csv:"steer_angle"`
	WheelSpin     float64 `csv:"wheel_spin"`
	WheelRotation float64 `csv:"wheel_rotation"`

	DeltaFL float64 `csv:"delta_fl"`
	DeltaFR float64 `csv:"delta_fr"`
	SpinFL  float64 `csv:"spin_fl"`
	SpinRL  float64 `csv:"spin_rl"`

	LeftDoor   float64 `csv:"left_door"`
	RightDoor  float64 `csv:"right_door"`
	GarageDoor float64 `csv:"garage_door"`

	CameraMode string  `csv:"camera_mode"`
	EyeX       float64 `csv:"eye_x"`
	EyeY       float64 `csv:"eye_y"`
	EyeZ       float64 `csv:"eye_z"`
}

// NewPoseRecord flattens a snapshot.
func NewPoseRecord(s sim.Snapshot) PoseRecord {
	wheel := func(id rig.PartID) rig.WheelPose {
		return s.Wheels[id-rig.WheelFrontLeft]
	}
	return PoseRecord{
		Tick:          s.Tick,
		X:             s.Position.X(),
		Y:             s.Position.Y(),
		Z:             s.Position.Z(),
		Heading:       s.Heading,
		SteerAngle:    s.SteerAngle,
		WheelSpin:     s.WheelSpin,
		WheelRotation: s.WheelRotation,
		DeltaFL:       wheel(rig.WheelFrontLeft).Delta,
		DeltaFR:       wheel(rig.WheelFrontRight).Delta,
		SpinFL:        wheel(rig.WheelFrontLeft).Spin,
		SpinRL:        wheel(rig.WheelRearLeft).Spin,
		LeftDoor:      s.LeftDoorAngle,
		RightDoor:     s.RightDoorAngle,
		GarageDoor:    s.GarageDoorAngle,
		CameraMode:    s.CameraMode.String(),
		EyeX:          s.View.Eye.X(),
		EyeY:          s.View.Eye.Y(),
		EyeZ:          s.View.Eye.Z(),
	}
}
