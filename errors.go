// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

import (
	"errors"
	"fmt"

	"github.com/gogpu/front/device"
	"github.com/gogpu/front/device/attrib"
)

// Parameter errors.
var (
	// ErrMissingUniform is returned when a declared uniform has no value.
	ErrMissingUniform = errors.New("front: missing uniform")

	// ErrMissingBlock is returned when a declared uniform block has no buffer.
	ErrMissingBlock = errors.New("front: missing uniform block")

	// ErrMissingTexture is returned when a declared texture has no value.
	ErrMissingTexture = errors.New("front: missing texture")

	// ErrMissingSampler is returned when a depth-comparison texture is
	// supplied without a sampler.
	ErrMissingSampler = errors.New("front: missing sampler")
)

// Mesh errors.
var (
	// ErrAttributeMissing is returned when the mesh lacks a declared vertex
	// input.
	ErrAttributeMissing = errors.New("front: attribute missing")

	// ErrAttributeType is returned when a mesh attribute cannot feed the
	// declared vertex input.
	ErrAttributeType = errors.New("front: attribute type mismatch")
)

// ParamKind identifies the category of a missing parameter.
type ParamKind uint8

const (
	ParamUniform ParamKind = iota
	ParamBlock
	ParamTexture
	ParamSampler
)

var paramKindNames = [...]string{
	ParamUniform: "uniform",
	ParamBlock:   "block",
	ParamTexture: "texture",
	ParamSampler: "sampler",
}

// String returns the category name.
func (k ParamKind) String() string {
	if int(k) < len(paramKindNames) {
		return paramKindNames[k]
	}
	return "unknown"
}

// ParameterError reports a declared program parameter with no value.
type ParameterError struct {
	Kind ParamKind
	// Name is the declared name of the parameter.
	Name string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("front: missing %s %q", e.Kind, e.Name)
}

// Unwrap returns the sentinel for the parameter category.
func (e *ParameterError) Unwrap() error {
	switch e.Kind {
	case ParamBlock:
		return ErrMissingBlock
	case ParamTexture:
		return ErrMissingTexture
	case ParamSampler:
		return ErrMissingSampler
	default:
		return ErrMissingUniform
	}
}

// MeshErrorKind identifies why a mesh does not fit a program.
type MeshErrorKind uint8

const (
	MeshAttributeMissing MeshErrorKind = iota
	MeshAttributeType
)

// MeshError reports a mesh that cannot feed a program's vertex inputs.
type MeshError struct {
	Kind MeshErrorKind
	// Name is the declared vertex input.
	Name string
	// Declared and Have are set for MeshAttributeType.
	Declared device.BaseType
	Have     attrib.Type
}

func (e *MeshError) Error() string {
	if e.Kind == MeshAttributeType {
		return fmt.Sprintf("front: attribute %q is %v, program declares %v", e.Name, e.Have, e.Declared)
	}
	return fmt.Sprintf("front: attribute %q missing from mesh", e.Name)
}

// Unwrap returns ErrAttributeMissing or ErrAttributeType.
func (e *MeshError) Unwrap() error {
	if e.Kind == MeshAttributeType {
		return ErrAttributeType
	}
	return ErrAttributeMissing
}

// DrawPhase identifies the step of a draw call that failed.
type DrawPhase uint8

const (
	// PhaseProgram is reserved for program validation failures.
	PhaseProgram DrawPhase = iota
	// PhaseParameter is a parameter binding failure (*ParameterError).
	PhaseParameter
	// PhaseMesh is a vertex input binding failure (*MeshError).
	PhaseMesh
	// PhaseSlice is reserved for slice validation failures.
	PhaseSlice
)

var drawPhaseNames = [...]string{
	PhaseProgram:   "program",
	PhaseParameter: "parameter",
	PhaseMesh:      "mesh",
	PhaseSlice:     "slice",
}

// String returns the phase name.
func (p DrawPhase) String() string {
	if int(p) < len(drawPhaseNames) {
		return drawPhaseNames[p]
	}
	return "unknown"
}

// DrawError is the error returned by Renderer.Draw.
type DrawError struct {
	Phase DrawPhase
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("front: draw failed in %s phase: %v", e.Phase, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }

// ProgramStage identifies the step of program creation that failed.
type ProgramStage uint8

const (
	StageVertex ProgramStage = iota
	StageFragment
	StageLink
	StageParameters
)

var programStageNames = [...]string{
	StageVertex:     "vertex shader",
	StageFragment:   "fragment shader",
	StageLink:       "link",
	StageParameters: "parameter connection",
}

// String returns the stage name.
func (s ProgramStage) String() string {
	if int(s) < len(programStageNames) {
		return programStageNames[s]
	}
	return "unknown"
}

// ProgramError is returned by LinkProgram and LinkUserProgram. Err is the
// backend diagnostic, typically *device.CompileError, *device.LinkError or
// *shade.ConnectError.
type ProgramError struct {
	Stage ProgramStage
	Err   error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("front: %s failed: %v", e.Stage, e.Err)
}

func (e *ProgramError) Unwrap() error { return e.Err }
