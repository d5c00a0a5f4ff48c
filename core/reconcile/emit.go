package reconcile

// ToRows formats records as [code, title, desc, brand] rows, keeping their order.
func ToRows(records []MergedRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Code, r.Title, r.Desc, r.Brand})
	}
	return rows
}
