// internal/output/dedup.go
package output

import "github.com/qaharvest/qaharvest/pkg/types"

// DeduplicateQA drops QA records whose exact question text was already seen;
// the first occurrence wins. Records with an empty question are dropped too.
// Returns the kept records in original order and the number removed.
func DeduplicateQA(pairs []types.QAPair) ([]types.QAPair, int) {
	seen := make(map[string]bool, len(pairs))
	kept := make([]types.QAPair, 0, len(pairs))
	removed := 0

	for _, pair := range pairs {
		if pair.Question == "" || seen[pair.Question] {
			removed++
			continue
		}
		seen[pair.Question] = true
		kept = append(kept, pair)
	}

	return kept, removed
}

// DeduplicateDiscussions drops discussion records by exact title text,
// first occurrence wins.
func DeduplicateDiscussions(posts []types.DiscussionPost) ([]types.DiscussionPost, int) {
	seen := make(map[string]bool, len(posts))
	kept := make([]types.DiscussionPost, 0, len(posts))
	removed := 0

	for _, post := range posts {
		if post.Title == "" || seen[post.Title] {
			removed++
			continue
		}
		seen[post.Title] = true
		kept = append(kept, post)
	}

	return kept, removed
}
