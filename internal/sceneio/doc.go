// Package sceneio reads and writes scene documents: YAML files holding a
// forest of object trees together with the external assets they reference.
//
// A reference inside a field is written as a string:
//
//	Body/Armature/Hips                 node, starting with the root name
//	Body/Armature/Hips#VRCPhysBone     first component of that type on the node
//	asset:SkinMaterial                 external asset listed under assets
//	"" or null                         null reference
//
// References may point forward in the document; they are resolved once every
// tree has been built.
package sceneio
