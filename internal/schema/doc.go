// Package schema holds per-component-type field registrations supplied by
// the host integration layer.
//
// A TypeDef declares, for one component (or nested record) type, which
// fields exist and what shape each one has. Types may extend a base type;
// Fields flattens the chain so that fields declared on ancestor types come
// first, the way a host reflection walk would report them.
//
// Definitions come from three places:
//   - Register, called directly by integration code
//   - Load / Parse, reading a YAML schema file
//   - RegisterStruct, classifying the fields of a Go struct type once at
//     registration time
//
// # Schema file
//
//	version: "1"
//	types:
//	  - name: VRCPhysBoneBase
//	    fields:
//	      - name: rootTransform
//	        kind: ref
//	      - name: colliders
//	        kind: list
//	  - name: VRC.SDK3.Dynamics.PhysBone.Components.VRCPhysBone
//	    extends: VRCPhysBoneBase
//	    fields:
//	      - name: ignoreTransforms
//	        kind: list
//	      - name: radius
//	        kind: scalar
package schema
