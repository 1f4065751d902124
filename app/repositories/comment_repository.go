package repositories

import (
	"sort"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create stores a new comment. The referenced post id must be well-formed
// but is not checked for existence: comments are weak references.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	postID, err := parseID(comment.PostID)
	if err != nil {
		return err
	}
	comment.PostID = postID

	if comment.ParentID != nil {
		parentID, err := parseID(*comment.ParentID)
		if err != nil {
			return err
		}
		comment.ParentID = &parentID
	}

	return r.db.Update(func(txn *badger.Txn) error {
		comment.ID = newID()
		comment.BeforeCreate()

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		// Post id in the key makes per-post listing a prefix scan.
		key := []byte(CommentKeyPrefix + comment.PostID + ":" + comment.ID)
		return txn.Set(key, data)
	})
}

// ListByPost retrieves all comments for a post, newest first. A well-formed
// id with no comments yields an empty result, whether or not the post exists.
func (r *BadgerCommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	postID, err := parseID(postID)
	if err != nil {
		return nil, err
	}

	var comments []*models.Comment
	err = r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix + postID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

// CountByPost groups all comments by post id and counts each group. Posts
// with no comments do not appear.
func (r *BadgerCommentRepository) CountByPost() (map[string]int, error) {
	counts := make(map[string]int)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			counts[comment.PostID]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
