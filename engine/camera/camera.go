package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position    mgl32.Vec3
	rotation    mgl32.Quat
	halfExtents mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera defines the first-person camera entity.
// The camera owns a world-space position and an orientation quaternion and derives
// view/projection matrices from them whenever either changes. It also exposes an
// axis-aligned box around its position so it can stand in for the player body
// in collision queries.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the current position
	Position() mgl32.Vec3

	// SetPosition moves the camera to pos and recomputes the view matrix.
	//
	// Parameters:
	//   - pos: world-space position
	SetPosition(pos mgl32.Vec3)

	// Rotation returns the camera's orientation.
	//
	// Returns:
	//   - mgl32.Quat: the current rotation
	Rotation() mgl32.Quat

	// SetRotation replaces the camera's orientation and recomputes the view matrix.
	//
	// Parameters:
	//   - q: the new rotation, normalised on assignment
	SetRotation(q mgl32.Quat)

	// WorldDirection returns the unit vector the camera is facing in world space.
	// An unrotated camera faces -Z.
	//
	// Returns:
	//   - mgl32.Vec3: the facing direction
	WorldDirection() mgl32.Vec3

	// TranslateX moves the camera along its local X (right) axis.
	// Negative distances move left.
	//
	// Parameters:
	//   - distance: signed distance along the local right axis
	TranslateX(distance float32)

	// HalfExtents returns the half size of the camera's collision box.
	//
	// Returns:
	//   - mgl32.Vec3: half extents along each axis
	HalfExtents() mgl32.Vec3

	// BBox returns the camera's collision box centred on its position.
	// With zero half extents this is a point box.
	//
	// Returns:
	//   - cube.BBox: the world-space box
	BBox() cube.BBox

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// ViewMatrix returns the current view matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin with an identity rotation and
// default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		rotation: mgl32.QuatIdent(),
		fov:      45.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(pos mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = pos
	c.updateMatrices()
}

func (c *cameraImpl) Rotation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) SetRotation(q mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = q.Normalize()
	c.updateMatrices()
}

func (c *cameraImpl) WorldDirection() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation.Rotate(common.WorldForward)
}

func (c *cameraImpl) TranslateX(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.position.Add(c.rotation.Rotate(common.WorldRight).Mul(distance))
	c.updateMatrices()
}

func (c *cameraImpl) HalfExtents() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.halfExtents
}

func (c *cameraImpl) BBox() cube.BBox {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.BoxAround(c.position, c.halfExtents)
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

// updateMatrices recalculates the view, projection and view-projection matrices.
// The view matrix is the inverse of the camera's world transform (translate * rotate).
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = c.rotation.Conjugate().Mat4().Mul4(
		mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]),
	)
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
