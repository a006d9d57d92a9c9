package model

import "testing"

func newList(flags ...bool) Worklist {
	list := make(Worklist, 0, len(flags))
	for i, flag := range flags {
		list = append(list, &VideoRecord{
			URL:        "http://example.com/V" + string(rune('a'+i)) + ".mp4",
			Downloaded: flag,
		})
	}
	return list
}

func TestWorklist_Next(t *testing.T) {
	tests := []struct {
		name      string
		list      Worklist
		wantIndex int // -1 for none
	}{
		{"empty", Worklist{}, -1},
		{"nil", nil, -1},
		{"all downloaded", newList(true, true), -1},
		{"first pending", newList(false, false), 0},
		{"skips downloaded", newList(true, false, false), 1},
		{"pending after gap", newList(true, true, false), 2},
		{"interleaved", newList(true, false, true, false), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record, ok := test.list.Next()
			if test.wantIndex < 0 {
				if ok || record != nil {
					t.Fatalf("Expected no record, got %v", record)
				}
				return
			}
			if !ok {
				t.Fatal("Expected a record, got none")
			}
			if record != test.list[test.wantIndex] {
				t.Errorf("Expected record %d, got %v", test.wantIndex, record)
			}
		})
	}
}

func TestWorklist_NextDoesNotMutate(t *testing.T) {
	list := newList(true, false)
	list.Next()
	list.Next()

	if !list[0].Downloaded || list[1].Downloaded {
		t.Error("Next must not change any downloaded flag")
	}
}

func TestWorklist_PendingAndDownloaded(t *testing.T) {
	list := newList(true, false, true, false)

	pending := list.Pending()
	if len(pending) != 2 || pending[0] != list[1] || pending[1] != list[3] {
		t.Errorf("Unexpected pending records: %v", pending)
	}

	downloaded := list.Downloaded()
	if len(downloaded) != 2 || downloaded[0] != list[0] || downloaded[1] != list[2] {
		t.Errorf("Unexpected downloaded records: %v", downloaded)
	}

	if list.Progress() != 50 {
		t.Errorf("Expected progress 50, got %v", list.Progress())
	}
	if (Worklist{}).Progress() != 0 {
		t.Error("Expected progress 0 for empty list")
	}
}

func TestWorklist_MarkDownloaded(t *testing.T) {
	list := newList(false, false)

	if !list.MarkDownloaded(list[1]) {
		t.Fatal("Expected record to be found")
	}
	if list[0].Downloaded || !list[1].Downloaded {
		t.Error("Expected only the second record to be marked")
	}

	if list.MarkDownloaded(&VideoRecord{URL: list[0].URL}) {
		t.Error("Expected foreign record to be rejected")
	}
	if list[0].Downloaded {
		t.Error("Foreign record must not mark a list entry")
	}
}
