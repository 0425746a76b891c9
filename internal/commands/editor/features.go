package editorcmd

// FeatureGates exposes runtime feature toggles required by editor command
// handlers. Callers should supply closures that read from the runtime
// configuration so handlers stay decoupled from it while honouring feature
// flags.
type FeatureGates struct {
	EditorEnabled func() bool
}

func (g FeatureGates) editorEnabled() bool {
	if g.EditorEnabled == nil {
		return true
	}
	return g.EditorEnabled()
}
