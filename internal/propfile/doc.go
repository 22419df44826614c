// Package propfile reads and writes property maps as YAML.
//
// Nested mappings become nested property maps. Untagged values take their
// natural kind (int: s32bit, float: double, bool: boolean, timestamp,
// string, sequences of those: ilist, dlist or slist). Any other kind is
// selected by a local tag named after the kind:
//
//	echoTime: !float 45
//	voxelSize: !fvector4 [1, 1, 3, 0]
//	sliceVec: !dvector4 "0 0 1"
//	windowColor: !color24 [255, 128, 0]
//
// Values that cannot be decoded are reported as diagnostics, the rest of
// the file is still loaded.
package propfile
