package parser

import "container/heap"

// MergeChronological merges several message sequences into one ordered by
// timestamp, oldest first. Each input sequence is assumed to be in its own
// export order; ties keep the earlier sequence's message first.
//
// This is the explicit sorting pass for callers that need a chronological
// timeline across multiple exports. Parse itself preserves input order and
// never re-sorts.
func MergeChronological(sequences ...[]Message) []Message {
	total := 0
	for _, seq := range sequences {
		total += len(seq)
	}
	if total == 0 {
		return nil
	}

	h := &messageHeap{}
	heap.Init(h)
	for i, seq := range sequences {
		if len(seq) > 0 {
			heap.Push(h, mergeCursor{seq: i, pos: 0, ts: seq[0].Timestamp.UnixNano(), messages: seq})
		}
	}

	merged := make([]Message, 0, total)
	for h.Len() > 0 {
		cur := heap.Pop(h).(mergeCursor)
		merged = append(merged, cur.messages[cur.pos])
		if next := cur.pos + 1; next < len(cur.messages) {
			heap.Push(h, mergeCursor{
				seq:      cur.seq,
				pos:      next,
				ts:       cur.messages[next].Timestamp.UnixNano(),
				messages: cur.messages,
			})
		}
	}
	return merged
}

type mergeCursor struct {
	seq      int
	pos      int
	ts       int64
	messages []Message
}

type messageHeap []mergeCursor

func (h messageHeap) Len() int { return len(h) }

func (h messageHeap) Less(i, j int) bool {
	if h[i].ts != h[j].ts {
		return h[i].ts < h[j].ts
	}
	return h[i].seq < h[j].seq
}

func (h messageHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *messageHeap) Push(x interface{}) {
	*h = append(*h, x.(mergeCursor))
}

func (h *messageHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
