package domain

// Mesh identifies FESOM mesh data by its filesystem path. The path is
// opaque: nothing in this tool interprets the mesh contents, only the
// external partitioner does.
type Mesh struct {
	Path string
}

func NewMesh(path string) Mesh {
	return Mesh{Path: path}
}
