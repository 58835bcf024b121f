package buffer_test

import (
	"fmt"

	"github.com/maretto/framebuf/buffer"
	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// ExampleBuffer builds a tiny robot tree and asks where the item is
// from the camera's point of view.
//
// Scenario:
//
//	world→item       static, item sits at (1, 0, 0)
//	world→base_link  timed, the robot parked at the origin
//	base_link→camera static, camera mounted 0.5 m ahead
func ExampleBuffer() {
	buf := buffer.New()

	stamp := tftime.Time{Sec: 100}
	rot := transform.Quaternion{W: 1}

	buf.Ingest([]transform.TransformStamped{
		{Parent: "world", Child: "item", Stamp: stamp,
			Transform: transform.Transform{Translation: transform.Vector3{X: 1}, Rotation: rot}},
		{Parent: "base_link", Child: "camera", Stamp: stamp,
			Transform: transform.Transform{Translation: transform.Vector3{X: 0.5}, Rotation: rot}},
	}, true)
	buf.Ingest([]transform.TransformStamped{
		{Parent: "world", Child: "base_link", Stamp: stamp,
			Transform: transform.Transform{Rotation: rot}},
	}, false)

	ts, err := buf.Lookup("camera", "item", tftime.Zero)
	if err != nil {
		fmt.Println("lookup failed:", err)
		return
	}
	fmt.Printf("item in %s frame: (%.1f, %.1f, %.1f)\n",
		ts.Parent, ts.Transform.Translation.X, ts.Transform.Translation.Y, ts.Transform.Translation.Z)
	// Output: item in camera frame: (0.5, 0.0, 0.0)
}

// ExampleBuffer_canTransform waits for data instead of polling.
func ExampleBuffer_canTransform() {
	buf := buffer.New()
	buf.Ingest([]transform.TransformStamped{
		{Parent: "world", Child: "base_link", Stamp: tftime.Time{Sec: 7},
			Transform: transform.Transform{Rotation: transform.Quaternion{W: 1}}},
	}, false)

	ok, err := buf.CanTransform("base_link", "world", tftime.Time{Sec: 7}, tftime.Duration{})
	fmt.Println(ok, err)
	// Output: true <nil>
}
