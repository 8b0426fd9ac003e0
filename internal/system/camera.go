package system

import (
	"errors"

	"boundless/internal/camera"
	"boundless/internal/component"
	"boundless/internal/ecs"
)

// ErrMissingActiveCamera means the view pipeline was asked to run without a
// usable camera entity. It is a setup bug, never a per-frame condition.
var ErrMissingActiveCamera = errors.New("system: no active camera")

// CameraState reads the camera state from entity cam's Transform and, when
// present, its Camera limits.
func CameraState(w *ecs.World, cam ecs.EntityID) (camera.State, error) {
	if cam == ecs.NilEntity || !w.Alive(cam) {
		return camera.State{}, ErrMissingActiveCamera
	}
	tc := w.Get(cam, component.CTransform)
	if tc == nil {
		return camera.State{}, ErrMissingActiveCamera
	}
	tr := tc.(component.Transform)
	limits := camera.DefaultLimits()
	if cc := w.Get(cam, component.CCamera); cc != nil {
		limits = cc.(component.Camera).Limits
	}
	return camera.State{Position: tr.Position, Scale: tr.Scale, Limits: limits}, nil
}

// StoreCamera writes s back to entity cam.
func StoreCamera(w *ecs.World, cam ecs.EntityID, s camera.State) {
	w.Add(cam, component.Transform{Position: s.Position, Scale: s.Scale})
	w.Add(cam, component.Camera{Limits: s.Limits})
}

// UpdateCamera loads the camera, applies fn, and stores the result.
func UpdateCamera(w *ecs.World, cam ecs.EntityID, fn func(*camera.State)) error {
	s, err := CameraState(w, cam)
	if err != nil {
		return err
	}
	fn(&s)
	if err := s.Validate(); err != nil {
		return err
	}
	StoreCamera(w, cam, s)
	return nil
}

// NewCamera creates a camera entity at the world origin with unit zoom.
func NewCamera(w *ecs.World, limits camera.Limits) ecs.EntityID {
	id := w.CreateEntity()
	s := camera.New(component.At(0, 0).Position, limits)
	StoreCamera(w, id, s)
	return id
}
