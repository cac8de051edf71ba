package pipeline

import "github.com/alnah/go-md2rst/internal/fileutil"

// ProvenanceHeader marks generated RST files as machine-generated.
// It is always the first line of a persisted artifact.
const ProvenanceHeader = ".. This file is automatically generated by md2rst from README.md.\n\n"

// PrependProvenance adds the provenance notice in front of the RST text.
func PrependProvenance(rst string) string {
	return ProvenanceHeader + rst
}

// PersistOrDiscard writes finalizedText to targetPath when createRST is true,
// or removes any existing artifact at targetPath when it is false.
// Persistence is a side effect, not part of the return contract: the
// finalized text is returned either way.
func PersistOrDiscard(finalizedText, targetPath string, createRST bool) (string, error) {
	if createRST {
		if err := fileutil.ReplaceFile(targetPath, finalizedText); err != nil {
			return "", err
		}
		return finalizedText, nil
	}

	if err := fileutil.RemoveIfPresent(targetPath); err != nil {
		return "", err
	}
	return finalizedText, nil
}
