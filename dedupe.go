package grana

// Dedupe drops every candidate whose fingerprint matches an existing
// ledger transaction or an earlier candidate of the same batch (imported
// files routinely contain the same row twice). The order of survivors is
// the order of the input.
func Dedupe(candidates, existing []Transaction) []Transaction {
	known := make(map[Fingerprint]struct{}, len(existing))
	for _, t := range existing {
		known[FingerprintOf(t)] = struct{}{}
	}

	var out []Transaction
	for _, c := range candidates {
		fp := FingerprintOf(c)
		if _, dup := known[fp]; dup {
			continue
		}
		known[fp] = struct{}{}
		out = append(out, c)
	}
	return out
}
