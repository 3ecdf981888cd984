package ls

import (
	"fmt"
	"io"
	"strings"

	"github.com/hayeah/ccdb/namespace"
)

const treeIndent = "   "

// DumpTree writes dir and all of its subdirectories in pre-order. With
// showFullPath every line is a full path; otherwise names are indented by
// level. Tables are never written.
func DumpTree(w io.Writer, dir *namespace.Directory, showFullPath bool, level int) error {
	var line string
	if showFullPath {
		line = dir.Path
	} else {
		line = strings.Repeat(treeIndent, level) + dir.Name
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, sub := range dir.SubDirs {
		if err := DumpTree(w, sub, showFullPath, level+1); err != nil {
			return err
		}
	}
	return nil
}
