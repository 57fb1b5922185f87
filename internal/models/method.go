package models

// methodLabels maps method identifiers to their pt-BR display names.
var methodLabels = map[string]string{
	MethodStraight:    "Série reta",
	MethodDropset:     "Dropset",
	MethodPyramidUp:   "Pirâmide subida (upset)",
	MethodPyramidDown: "Pirâmide descida",
	MethodAMRAP:       "AMRAP",
}

// MethodLabel returns the display name for a method, or the raw identifier
// if unknown, so stale session snapshots still render.
func MethodLabel(method string) string {
	if label, ok := methodLabels[method]; ok {
		return label
	}
	return method
}

// KnownMethod reports whether the method has a dedicated plan shape.
func KnownMethod(method string) bool {
	_, ok := methodLabels[method]
	return ok
}
