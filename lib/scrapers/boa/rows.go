package boa

// Row is one output spreadsheet row. Equality is structural, which is
// what the dedup pass keys on. A nominate row carries the species epithet
// in the Subspecies column.
type Row struct {
	Species    string
	Subspecies string
	CommonName string
}

// BuildRows folds document-ordered taxon items into the final row list.
// Nominate rows are deferred: whether a species needs one is only known
// once the next species boundary (or the end of the stream) is reached.
// Subspecies rows are emitted eagerly.
func BuildRows(items []TaxonItem, commonNames map[string]string) []Row {
	var rows []Row

	currentSpecies := ""
	currentCommon := ""
	currentHasSubspecies := false

	flushNominate := func() {
		if currentSpecies != "" && !currentHasSubspecies {
			rows = append(rows, Row{
				Species:    currentSpecies,
				Subspecies: Epithet(currentSpecies),
				CommonName: currentCommon,
			})
		}
	}

	for _, it := range items {
		switch it.Kind {
		case KindSpecies:
			flushNominate()
			currentSpecies = Binomial(it.Taxon)
			currentCommon = commonNames[currentSpecies]
			currentHasSubspecies = false

		case KindSubspecies:
			// a subspecies seen before any species names its own
			// species through the leading words of the trinomial
			if currentSpecies == "" {
				currentSpecies = Binomial(it.Taxon)
				currentCommon = commonNames[currentSpecies]
			}
			currentHasSubspecies = true
			rows = append(rows, Row{
				Species:    currentSpecies,
				Subspecies: Epithet(it.Taxon),
				CommonName: currentCommon,
			})
		}
	}
	flushNominate()

	return dedupeRows(rows)
}

func dedupeRows(rows []Row) []Row {
	seen := make(map[Row]struct{}, len(rows))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
