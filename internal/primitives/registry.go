package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rain-scene/internal/vecmath"
)

// Kind names a lit primitive mesh.
type Kind string

const (
	Cube   Kind = "cube"
	Sphere Kind = "sphere"
)

// cached holds mesh and material for a primitive kind. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[Kind]cached
	shader   rl.Shader
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no primitives loaded yet.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[Kind]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing so lit primitives get correct shading.
func (r *Registry) SetView(viewPos, lightDir vecmath.Vec3) {
	r.viewPos = viewPos.Array()
	r.lightDir = lightDir.Normalize().Array()
}

// sphereRings and sphereSlices control sphere mesh resolution.
const sphereRings = 12
const sphereSlices = 12

// ensure creates the mesh and material for kind if not yet cached. Both kinds are unit sized
// and centered on the origin: cube side 1, sphere radius 0.5.
func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch kind {
	case Cube:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	default:
		return cached{}, false
	}
	if r.shader.ID == 0 {
		r.shader = loadLitShader()
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[kind] = c
	return c, true
}

// loadLitShader returns a shader that does simple directional light + ambient.
// Shared by every kind. Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term. Overcast sky, so it is high and slightly blue.
var defaultAmbient = [4]float32{0.38, 0.4, 0.46, 1.0}

// defaultLightColor is a cool white for the diffuse daylight under cloud.
var defaultLightColor = [3]float32{0.92, 0.95, 1.0}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.6)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.2)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity, and specular on the given shader (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Draw draws one instance of kind centered at position, scaled by scale and turned yaw
// degrees about Y, tinted with color. Must be called between BeginMode3D and EndMode3D,
// after SetView. Unknown kinds are skipped.
func (r *Registry) Draw(kind Kind, position, scale vecmath.Vec3, yaw float32, color rl.Color) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	// Order: scale, then rotate, then translate to position.
	transform := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	if yaw != 0 {
		transform = rl.MatrixMultiply(transform, rl.MatrixRotateY(vecmath.Radians(yaw)))
	}
	transform = rl.MatrixMultiply(transform, rl.MatrixTranslate(position.X, position.Y, position.Z))
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload releases every cached mesh and the shared shader. Call before the window closes.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, kind)
	}
	if r.shader.ID != 0 {
		rl.UnloadShader(r.shader)
		r.shader = rl.Shader{}
	}
}
