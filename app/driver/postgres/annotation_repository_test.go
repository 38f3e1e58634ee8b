package postgres

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotate-service/app/domain"
	"annotate-service/app/utils/logger"
)

var annotationRowColumns = []string{"id", "uri", "title", "notes", "created_at", "updated_at"}
var tagRowColumns = []string{"annotation_id", "id", "pref_label", "facet_id", "facet", "uri"}

// Helper function to create a test annotation repository with mocked database
func createTestAnnotationRepository(t *testing.T) (*AnnotationRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	var buf bytes.Buffer
	testLogger, err := logger.NewWithWriter("debug", &buf)
	require.NoError(t, err)

	repo := NewAnnotationRepository(mockDB, testLogger).(*AnnotationRepository)

	return repo, mockDB
}

func TestAnnotationRepository_FindByURI(t *testing.T) {
	now := time.Now()
	facetID := int64(7)
	facetName := "subject_ss"
	facetURI := "http://ex.org/prop"

	tests := []struct {
		name     string
		uri      string
		setupDB  func(pgxmock.PgxPoolIface)
		wantIDs  []int64
		wantTags map[int64][]string
		wantErr  bool
	}{
		{
			name: "no annotation",
			uri:  "http://x/none",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM annotations WHERE uri = \\$1 ORDER BY id ASC").
					WithArgs("http://x/none").
					WillReturnRows(pgxmock.NewRows(annotationRowColumns))
			},
			wantIDs: []int64{},
		},
		{
			name: "duplicates returned in id order with tags",
			uri:  "http://x/1",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM annotations WHERE uri = \\$1").
					WithArgs("http://x/1").
					WillReturnRows(pgxmock.NewRows(annotationRowColumns).
						AddRow(int64(3), "http://x/1", "First", "", now, now).
						AddRow(int64(9), "http://x/1", "", "later", now, now))
				mockDB.ExpectQuery("SELECT at.annotation_id(.+)FROM annotation_tags at").
					WithArgs([]int64{3, 9}).
					WillReturnRows(pgxmock.NewRows(tagRowColumns).
						AddRow(int64(3), int64(1), "Maps", &facetID, &facetName, &facetURI).
						AddRow(int64(3), int64(2), "Rivers", nil, nil, nil).
						AddRow(int64(9), int64(1), "Maps", &facetID, &facetName, &facetURI))
			},
			wantIDs: []int64{3, 9},
			wantTags: map[int64][]string{
				3: {"Maps", "Rivers"},
				9: {"Maps"},
			},
		},
		{
			name: "query error",
			uri:  "http://x/1",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM annotations").
					WithArgs("http://x/1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAnnotationRepository(t)
			tt.setupDB(mockDB)

			annotations, err := repo.FindByURI(context.Background(), tt.uri)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				ids := []int64{}
				for _, a := range annotations {
					ids = append(ids, a.ID)
					var labels []string
					for _, tag := range a.Tags {
						labels = append(labels, tag.PrefLabel)
					}
					assert.Equal(t, tt.wantTags[a.ID], labels)
				}
				assert.Equal(t, tt.wantIDs, ids)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestAnnotationRepository_FindByURI_FacetColumns(t *testing.T) {
	repo, mockDB := createTestAnnotationRepository(t)
	now := time.Now()
	facetID := int64(7)
	facetName := "subject_ss"
	facetURI := ""

	mockDB.ExpectQuery("SELECT (.+) FROM annotations").
		WithArgs("http://x/1").
		WillReturnRows(pgxmock.NewRows(annotationRowColumns).
			AddRow(int64(3), "http://x/1", "", "", now, now))
	mockDB.ExpectQuery("FROM annotation_tags").
		WithArgs([]int64{3}).
		WillReturnRows(pgxmock.NewRows(tagRowColumns).
			AddRow(int64(3), int64(1), "Maps", &facetID, &facetName, &facetURI).
			AddRow(int64(3), int64(2), "Rivers", nil, nil, nil))

	annotations, err := repo.FindByURI(context.Background(), "http://x/1")
	require.NoError(t, err)
	require.Len(t, annotations, 1)
	require.Len(t, annotations[0].Tags, 2)

	maps := annotations[0].Tags[0]
	require.True(t, maps.HasFacet())
	assert.Equal(t, int64(7), maps.Facet.ID)
	assert.Equal(t, "subject_ss", maps.Facet.Name)
	assert.False(t, maps.Facet.HasURI())

	assert.False(t, annotations[0].Tags[1].HasFacet())
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestAnnotationRepository_Get(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		mockDB.ExpectQuery("SELECT (.+) FROM annotations WHERE id = \\$1").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows(annotationRowColumns).
				AddRow(int64(5), "http://x/5", "Title", "Notes", now, now))
		mockDB.ExpectQuery("FROM annotation_tags").
			WithArgs([]int64{5}).
			WillReturnRows(pgxmock.NewRows(tagRowColumns))

		annotation, err := repo.Get(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), annotation.ID)
		assert.Equal(t, "http://x/5", annotation.URI)
		assert.Equal(t, "Title", annotation.Title)
		assert.Equal(t, []domain.Concept{}, annotation.Tags)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		mockDB.ExpectQuery("SELECT (.+) FROM annotations WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		annotation, err := repo.Get(context.Background(), 404)
		assert.Nil(t, annotation)
		assert.ErrorIs(t, err, domain.ErrAnnotationNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestAnnotationRepository_Save(t *testing.T) {
	now := time.Now()

	t.Run("insert with tags", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		annotation := &domain.Annotation{
			URI:   "http://x/1",
			Title: "Example",
			Tags:  []domain.Concept{{ID: 4}, {ID: 2}},
		}

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("INSERT INTO annotations").
			WithArgs("http://x/1", "Example", "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))
		mockDB.ExpectExec("DELETE FROM annotation_tags").
			WithArgs(int64(11)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockDB.ExpectExec("INSERT INTO annotation_tags").
			WithArgs(int64(11), int64(4), 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("INSERT INTO annotation_tags").
			WithArgs(int64(11), int64(2), 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectCommit()

		id, err := repo.Save(context.Background(), annotation)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, int64(11), annotation.ID)
		assert.Equal(t, now, annotation.CreatedAt)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("update replaces tags", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		annotation := &domain.Annotation{ID: 11, URI: "http://x/1", Notes: "new notes"}

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("UPDATE annotations").
			WithArgs(int64(11), "http://x/1", "", "new notes").
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mockDB.ExpectExec("DELETE FROM annotation_tags").
			WithArgs(int64(11)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mockDB.ExpectCommit()

		id, err := repo.Save(context.Background(), annotation)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("update of unknown id", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		annotation := &domain.Annotation{ID: 99, URI: "http://x/1"}

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("UPDATE annotations").
			WithArgs(int64(99), "http://x/1", "", "").
			WillReturnError(pgx.ErrNoRows)
		mockDB.ExpectRollback()

		_, err := repo.Save(context.Background(), annotation)
		assert.ErrorIs(t, err, domain.ErrAnnotationNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("tag insert fails", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		annotation := &domain.Annotation{URI: "http://x/1", Tags: []domain.Concept{{ID: 4}}}

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("INSERT INTO annotations").
			WithArgs("http://x/1", "", "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), now, now))
		mockDB.ExpectExec("DELETE FROM annotation_tags").
			WithArgs(int64(12)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockDB.ExpectExec("INSERT INTO annotation_tags").
			WithArgs(int64(12), int64(4), 0).
			WillReturnError(errors.New("foreign key violation"))
		mockDB.ExpectRollback()

		_, err := repo.Save(context.Background(), annotation)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store annotation tag 4")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mockDB := createTestAnnotationRepository(t)
		mockDB.ExpectBegin().WillReturnError(errors.New("pool closed"))

		_, err := repo.Save(context.Background(), &domain.Annotation{URI: "http://x/1"})
		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestAnnotationRepository_List(t *testing.T) {
	repo, mockDB := createTestAnnotationRepository(t)
	now := time.Now()

	mockDB.ExpectQuery("SELECT (.+) FROM annotations ORDER BY updated_at DESC, id DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(50, 0).
		WillReturnRows(pgxmock.NewRows(annotationRowColumns).
			AddRow(int64(2), "http://x/2", "B", "", now, now).
			AddRow(int64(1), "http://x/1", "A", "", now, now))
	mockDB.ExpectQuery("FROM annotation_tags").
		WithArgs([]int64{2, 1}).
		WillReturnRows(pgxmock.NewRows(tagRowColumns).
			AddRow(int64(1), int64(3), "Lakes", nil, nil, nil))

	annotations, err := repo.List(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, annotations, 2)
	assert.Empty(t, annotations[0].Tags)
	require.Len(t, annotations[1].Tags, 1)
	assert.Equal(t, "Lakes", annotations[1].Tags[0].PrefLabel)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
