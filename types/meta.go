package types

import "path"

// Path is an absolute, slash separated location in the remote tree.
type Path string

// Addr is an RPC endpoint, e.g. http://127.0.0.1:3000/rpc.
type Addr string

const RootPath Path = "/"

// Join resolves name against p. An absolute name replaces p; otherwise the
// result is lexically cleaned, so ".." climbs and never goes above "/".
func (p Path) Join(name string) Path {
	if path.IsAbs(name) {
		return Path(path.Clean(name))
	}
	return Path(path.Join(string(p), name))
}

func (p Path) String() string {
	return string(p)
}
