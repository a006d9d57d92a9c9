package model

// Worklist is the ordered list of videos; order defines download priority
type Worklist []*VideoRecord

// Next returns the first record that has not been downloaded yet.
// It returns false when every record is downloaded or the list is empty.
func (w Worklist) Next() (*VideoRecord, bool) {
	for _, record := range w {
		if record != nil && !record.Downloaded {
			return record, true
		}
	}
	return nil, false
}

// Pending returns all records not yet downloaded, in list order
func (w Worklist) Pending() []*VideoRecord {
	var pending []*VideoRecord
	for _, record := range w {
		if record != nil && !record.Downloaded {
			pending = append(pending, record)
		}
	}
	return pending
}

// Downloaded returns all records already downloaded, in list order
func (w Worklist) Downloaded() []*VideoRecord {
	var downloaded []*VideoRecord
	for _, record := range w {
		if record != nil && record.Downloaded {
			downloaded = append(downloaded, record)
		}
	}
	return downloaded
}

// Progress returns the share of downloaded records as percentage
func (w Worklist) Progress() float64 {
	if len(w) == 0 {
		return 0
	}
	return float64(len(w.Downloaded())) / float64(len(w)) * 100
}

// MarkDownloaded sets the downloaded flag of a record held in the list.
// It reports false if the record does not belong to this list.
func (w Worklist) MarkDownloaded(target *VideoRecord) bool {
	for _, record := range w {
		if record == target {
			record.Downloaded = true
			return true
		}
	}
	return false
}
