package encoding

const (
	// ExtensionDegreeEncodingLength is the width of the extension degree tag.
	ExtensionDegreeEncodingLength = 1

	// ExtensionDegree2 and ExtensionDegree3 are the accepted degree tags.
	ExtensionDegree2 = 0x02
	ExtensionDegree3 = 0x03
)
