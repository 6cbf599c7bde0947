package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/http"
	"github.com/mrlokans/berean/internal/reader"
	"github.com/mrlokans/berean/internal/studygroups"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// AnnotationStore implementations
var _ http.AnnotationStore = (*annotations.Repository)(nil)

// AnnotationSource implementations
var _ reader.AnnotationSource = (*annotations.Repository)(nil)

// =============================================================================
// Study Groups
// =============================================================================

// Provider implementations
var _ studygroups.Provider = (*studygroups.DemoProvider)(nil)
