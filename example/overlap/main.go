package main

import (
	"fmt"

	"github.com/akmonengine/aabb"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates a ground slab, a crate resting on it and a rotated crate
// floating above
func SetupScene() map[string]*aabb.AABB {
	ground := aabb.New(mgl64.Vec3{-10, -1, -10}, mgl64.Vec3{20, 1, 20})
	crate := aabb.FromOrientedBox(mgl64.Vec3{0, 1, 0}, mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1})
	rotated := aabb.FromOrientedBox(
		mgl64.Vec3{0.5, 2.5, 0},
		mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 1, 0}),
		mgl64.Vec3{1, 1, 1},
	)

	return map[string]*aabb.AABB{
		"ground":  ground,
		"crate":   crate,
		"rotated": rotated,
	}
}

func report(nameA, nameB string, a, b *aabb.AABB) {
	fmt.Printf("%s / %s:\n", nameA, nameB)
	fmt.Printf("   Intersects: %v\n", a.Intersects(b))
	fmt.Printf("   Touches:    %v\n", a.Touches(b))
	if overlap := a.Union(b); overlap != nil {
		fmt.Printf("   Overlap:    %v (volume=%.3f)\n", overlap, overlap.Volume())
	} else {
		fmt.Printf("   Overlap:    none\n")
	}
	fmt.Printf("   Enclosing:  %v\n", a.Expand(b))
}

func main() {
	scene := SetupScene()
	for _, name := range []string{"ground", "crate", "rotated"} {
		fmt.Printf("%-8s %v\n", name, scene[name])
	}
	fmt.Println()

	report("ground", "crate", scene["ground"], scene["crate"])
	report("crate", "rotated", scene["crate"], scene["rotated"])
	report("ground", "rotated", scene["ground"], scene["rotated"])

	// slide the crate off the ground
	scene["crate"].Translate(mgl64.Vec3{0, 0.5, 0})
	fmt.Println()
	fmt.Printf("crate moved to %v\n", scene["crate"])
	report("ground", "crate", scene["ground"], scene["crate"])

	scene["crate"].SetPosition(mgl64.Vec3{-1, 0, -1})
	fmt.Println()
	fmt.Printf("crate reset to %v\n", scene["crate"])
	report("ground", "crate", scene["ground"], scene["crate"])
}
