// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AnnotationStore: Annotation CRUD and scoped lookup (internal/http/stores.go)
//   - AnnotationSource: Active note/question lookup for the reader (internal/reader/session.go)
//
// ## Study Group Interfaces
//
//   - Provider: Read-only peer annotations (internal/studygroups/provider.go)
//
// # Adding a Study Group Backend
//
// The bundled DemoProvider serves a fixed data set. To connect a real group
// backend:
//
//  1. Implement Provider in internal/studygroups/
//
//     type APIProvider struct {
//         baseURL    string
//         httpClient *http.Client
//     }
//
//     func (p *APIProvider) ListPeerAnnotations(book string, chapter, verse *int) ([]PeerAnnotation, error)
//
//     var _ Provider = (*APIProvider)(nil)
//
//  2. Wire it in entrypoint.go in place of NewDemoProvider
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
