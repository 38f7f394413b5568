package viewcube

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

type ray struct {
	origin mat.Vec3
	dir    mat.Vec3
}

// rayFromCamera builds the world-space ray through the normalized device
// coordinate (x, y) of the camera's viewport. The camera-space direction
// matches the projection convention of mat.Perspective, where the aspect
// ratio scales the Y axis.
func rayFromCamera(cam *Camera, x, y float32) ray {
	tanHalf := math32.Tan(cam.FOV / 2)
	dirCam := mat.NewVec3(x*tanHalf, y*tanHalf/cam.Aspect, -1)

	inv := cam.ViewMatrix().InvAffine()
	origin := inv.TransformAffine(mat.NewVec3(0, 0, 0))
	target := inv.TransformAffine(dirCam)
	return ray{origin: origin, dir: target.Sub(origin).Normalized()}
}

type hit struct {
	face     *PickableFace
	distance float32
}

// castRay intersects r against the faces and returns the hits ordered
// nearest first.
func castRay(r ray, faces []PickableFace) []hit {
	var hits []hit
	for i := range faces {
		min, max := faces[i].bounds()
		if d, ok := r.intersectBox(min, max); ok {
			hits = append(hits, hit{face: &faces[i], distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})
	return hits
}

// intersectBox is a slab test against an axis-aligned box. It returns
// the distance to the entry point, or to the exit point when the ray
// starts inside the box.
func (r ray) intersectBox(min, max mat.Vec3) (float32, bool) {
	tmin, tmax := math32.Inf(-1), math32.Inf(1)
	for i := 0; i < 3; i++ {
		if r.dir[i] == 0 {
			if r.origin[i] < min[i] || r.origin[i] > max[i] {
				return 0, false
			}
			continue
		}
		t0 := (min[i] - r.origin[i]) / r.dir[i]
		t1 := (max[i] - r.origin[i]) / r.dir[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
