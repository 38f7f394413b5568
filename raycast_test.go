package viewcube

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestIntersectBox(t *testing.T) {
	min, max := mat.NewVec3(-1, -1, -1), mat.NewVec3(1, 1, 1)
	testCases := map[string]struct {
		ray      ray
		hit      bool
		distance float32
	}{
		"StraightHit": {
			ray:      ray{origin: mat.NewVec3(0, 0, 5), dir: mat.NewVec3(0, 0, -1)},
			hit:      true,
			distance: 4,
		},
		"Miss": {
			ray: ray{origin: mat.NewVec3(0, 5, 5), dir: mat.NewVec3(0, 0, -1)},
			hit: false,
		},
		"Behind": {
			ray: ray{origin: mat.NewVec3(0, 0, 5), dir: mat.NewVec3(0, 0, 1)},
			hit: false,
		},
		"FromInside": {
			ray:      ray{origin: mat.Vec3{}, dir: mat.NewVec3(0, 0, -1)},
			hit:      true,
			distance: 1,
		},
		"ParallelInsideSlab": {
			ray:      ray{origin: mat.NewVec3(0.5, 0, 5), dir: mat.NewVec3(0, 0, -1)},
			hit:      true,
			distance: 4,
		},
		"ParallelOutsideSlab": {
			ray: ray{origin: mat.NewVec3(2, 0, 5), dir: mat.NewVec3(0, 0, -1)},
			hit: false,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			d, ok := tt.ray.intersectBox(min, max)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, ok)
			}
			if ok && (d < tt.distance-poseTolerance || tt.distance+poseTolerance < d) {
				t.Errorf("Expected distance %f, got %f", tt.distance, d)
			}
		})
	}
}

func TestRayFromCamera(t *testing.T) {
	cam := NewCamera(math.Pi/3, 1, 0.1, 100)
	cam.Position = mat.NewVec3(0, 0, 3)
	cam.LookAt(mat.Vec3{})

	r := rayFromCamera(cam, 0, 0)
	if !vec3Near(r.origin, cam.Position, poseTolerance) {
		t.Errorf("Ray must start at the camera, got %v", r.origin)
	}
	if !vec3Near(r.dir, mat.NewVec3(0, 0, -1), poseTolerance) {
		t.Errorf("Center ray must point at the target, got %v", r.dir)
	}

	// A ray through the right half of the viewport bends toward +X.
	r = rayFromCamera(cam, 0.5, 0)
	if r.dir[0] <= 0 {
		t.Errorf("Right-side ray must have positive X, got %v", r.dir)
	}
	if r.dir[1] != 0 {
		t.Errorf("Right-side ray must stay in the XZ plane, got %v", r.dir)
	}
}

func TestCastRayOrdering(t *testing.T) {
	faces := CubeFaces()
	r := ray{origin: mat.NewVec3(0, 0, 3), dir: mat.NewVec3(0, 0, -1)}

	hits := castRay(r, faces)
	if len(hits) != 2 {
		t.Fatalf("Center ray must pierce the front and back faces, got %d hits", len(hits))
	}
	if hits[0].face.Command != ViewFront {
		t.Errorf("Nearest hit must win, got %s", hits[0].face.Command)
	}
	if hits[1].face.Command != ViewBack {
		t.Errorf("Back face must come second, got %s", hits[1].face.Command)
	}
	if hits[0].distance >= hits[1].distance {
		t.Errorf("Hits must be ordered by distance, got %f >= %f",
			hits[0].distance, hits[1].distance)
	}
}
