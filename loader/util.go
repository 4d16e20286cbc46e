package loader

func getMagic(p []byte) []byte {
	if len(p) < 4 {
		return nil
	}
	return p[:4]
}
