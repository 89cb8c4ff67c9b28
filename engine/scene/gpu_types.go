package scene

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSceneUniform is the GPU-aligned representation of the scene uniform buffer.
// Size: 112 bytes (WGSL uniform aligned).
//
//	struct SceneUniform {
//	    earth_model: mat4x4<f32>,
//	    sun_direction: vec3<f32>,
//	    clouds_mix: f32,
//	    atmosphere_day: vec3<f32>,
//	    elapsed: f32,
//	    atmosphere_twilight: vec3<f32>,
//	    atmosphere_scale: f32,
//	};
type GPUSceneUniform struct {
	EarthModel         [16]float32 // offset   0: globe model matrix (mat4x4<f32>)
	SunDirection       [3]float32  // offset  64: unit vector toward the sun
	CloudsMix          float32     // offset  76
	AtmosphereDay      [3]float32  // offset  80: linear RGB
	Elapsed            float32     // offset  92: seconds
	AtmosphereTwilight [3]float32  // offset  96: linear RGB
	AtmosphereScale    float32     // offset 108: atmosphere shell radius relative to the globe
}

// Size returns the size of the GPUSceneUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (g *GPUSceneUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSceneUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUSceneUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	put := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}
	for i := range 16 {
		put(i*4, g.EarthModel[i])
	}
	for i := range 3 {
		put(64+i*4, g.SunDirection[i])
		put(80+i*4, g.AtmosphereDay[i])
		put(96+i*4, g.AtmosphereTwilight[i])
	}
	put(76, g.CloudsMix)
	put(92, g.Elapsed)
	put(108, g.AtmosphereScale)
	return buf
}
