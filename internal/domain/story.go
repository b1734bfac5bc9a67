package domain

// Stories returns stories as post-like records, preserving order.
func Stories(stories []*Story) []PostLike {
	out := make([]PostLike, 0, len(stories))
	for _, s := range stories {
		out = append(out, s)
	}
	return out
}

// Posts returns posts as post-like records, preserving order.
func Posts(posts []*Post) []PostLike {
	out := make([]PostLike, 0, len(posts))
	for _, p := range posts {
		out = append(out, p)
	}
	return out
}

func Products(products []*Product) []PostLike {
	out := make([]PostLike, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	return out
}

func Messages(messages []*Message) []PostLike {
	out := make([]PostLike, 0, len(messages))
	for _, m := range messages {
		out = append(out, m)
	}
	return out
}
