// Package gormstore provides a GORM/Postgres-backed journal and snapshot
// store with the same semantics as entstore.
package gormstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/store"
)

// Option allows configuring the DB connection and stream behavior.
type Option func(*Store)

// WithLogger sets a custom GORM logger.
func WithLogger(l logger.Interface) Option { return func(s *Store) { s.gormLogger = l } }

// WithPollInterval sets how often live streams re-query for new events.
func WithPollInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithPageSize sets the page size for stream queries.
func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// Open opens a Postgres-backed GORM DB connection using the provided DSN and
// migrates the journal and snapshot tables.
func Open(dsn string, opts ...Option) (*Store, error) {
	s := &Store{pageSize: 200, pollInterval: 250 * time.Millisecond}
	for _, o := range opts {
		o(s)
	}
	gormCfg := &gorm.Config{}
	if s.gormLogger != nil {
		gormCfg.Logger = s.gormLogger
	}
	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&EventModel{}, &SnapshotModel{}); err != nil {
		return nil, err
	}
	s.db = db
	return s, nil
}

// EventModel is the GORM model for journal entries.
type EventModel struct {
	EventID   string    `gorm:"primaryKey;type:text"`
	Tag       string    `gorm:"index:idx_tag_global;type:text;not null"`
	EntityID  string    `gorm:"uniqueIndex:idx_entity_seq;type:text;not null"`
	Seq       uint64    `gorm:"uniqueIndex:idx_entity_seq;not null"`
	GlobalSeq int64     `gorm:"uniqueIndex;index:idx_tag_global;not null"`
	Type      string    `gorm:"type:text;not null"`
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index;not null"`
}

func (EventModel) TableName() string { return "events" }

// SnapshotModel is the GORM model for view snapshots.
type SnapshotModel struct {
	SnapshotID string    `gorm:"primaryKey;type:text"`
	ViewID     string    `gorm:"index;uniqueIndex:idx_view_seqnr;type:text;not null"`
	SeqNr      int64     `gorm:"uniqueIndex:idx_view_seqnr;not null"`
	Offset     []byte    `gorm:"type:bytea"`
	EntitySeqs []byte    `gorm:"type:jsonb"`
	State      []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"index;not null"`
}

func (SnapshotModel) TableName() string { return "snapshots" }

// Store implements journal.Journal and store.SnapshotStore using GORM.
type Store struct {
	db           *gorm.DB
	gormLogger   logger.Interface
	pageSize     int
	pollInterval time.Duration
}

// AppendEvent inserts one event, assigning the next per-entity sequence
// number and journal-global position inside a transaction.
func (s *Store) AppendEvent(ctx context.Context, tag, entityID, typ string, payload json.RawMessage) (EventModel, error) {
	var m EventModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lastSeq sql.NullInt64
		if err := tx.Model(&EventModel{}).Where("entity_id = ?", entityID).
			Select("max(seq)").Scan(&lastSeq).Error; err != nil {
			return err
		}
		var seq uint64
		if lastSeq.Valid {
			seq = uint64(lastSeq.Int64) + 1
		}
		var lastGlobal sql.NullInt64
		if err := tx.Model(&EventModel{}).Select("max(global_seq)").Scan(&lastGlobal).Error; err != nil {
			return err
		}
		m = EventModel{
			EventID:   uuid.NewString(),
			Tag:       tag,
			EntityID:  entityID,
			Seq:       seq,
			GlobalSeq: lastGlobal.Int64 + 1,
			Type:      typ,
			Payload:   payload,
			CreatedAt: time.Now().UTC(),
		}
		return tx.Create(&m).Error
	})
	return m, err
}

// SaveSnapshot stores a snapshot; unique per (view_id, seq_nr).
func (s *Store) SaveSnapshot(ctx context.Context, rec store.SnapshotRecord) (store.SnapshotRecord, error) {
	seqs, err := json.Marshal(rec.EntitySeqs)
	if err != nil {
		return store.SnapshotRecord{}, err
	}
	m := SnapshotModel{
		SnapshotID: rec.SnapshotID,
		ViewID:     rec.ViewID,
		SeqNr:      rec.SeqNr,
		Offset:     rec.Offset,
		EntitySeqs: seqs,
		State:      rec.State,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return store.SnapshotRecord{}, err
	}
	rec.CreatedAt = m.CreatedAt
	return rec, nil
}

// LoadLatestSnapshot fetches the highest-sequence snapshot for the view.
// Absence maps to sql.ErrNoRows per the store contract.
func (s *Store) LoadLatestSnapshot(ctx context.Context, viewID string) (store.SnapshotRecord, error) {
	var m SnapshotModel
	err := s.db.WithContext(ctx).Where("view_id = ?", viewID).Order("seq_nr desc").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.SnapshotRecord{}, sql.ErrNoRows
	}
	if err != nil {
		return store.SnapshotRecord{}, err
	}
	var seqs map[string]uint64
	if len(m.EntitySeqs) > 0 {
		if err := json.Unmarshal(m.EntitySeqs, &seqs); err != nil {
			return store.SnapshotRecord{}, err
		}
	}
	return store.SnapshotRecord{
		SnapshotID: m.SnapshotID,
		ViewID:     m.ViewID,
		SeqNr:      m.SeqNr,
		Offset:     m.Offset,
		EntitySeqs: seqs,
		State:      m.State,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// CurrentEvents implements journal.Journal, bounded at the current maximum
// global position.
func (s *Store) CurrentEvents(ctx context.Context, tag string, from journal.Offset) (journal.Stream, error) {
	var bound sql.NullInt64
	if err := s.db.WithContext(ctx).Model(&EventModel{}).Select("max(global_seq)").Scan(&bound).Error; err != nil {
		return nil, err
	}
	return &eventStream{s: s, tag: tag, from: from, bound: bound.Int64, closed: make(chan struct{})}, nil
}

// Events implements journal.Journal; the stream polls and never completes.
func (s *Store) Events(ctx context.Context, tag string, from journal.Offset) (journal.Stream, error) {
	return &eventStream{s: s, tag: tag, from: from, live: true, closed: make(chan struct{})}, nil
}

type eventStream struct {
	s         *Store
	tag       string
	from      journal.Offset
	live      bool
	bound     int64 // upper global bound for historical streams; zero on an empty journal
	cursor    int64
	primed    bool
	buf       []EventModel
	closed    chan struct{}
	closeOnce sync.Once
}

func (st *eventStream) fetch(ctx context.Context) ([]EventModel, error) {
	q := st.s.db.WithContext(ctx).Where("tag = ?", st.tag)
	if st.primed {
		q = q.Where("global_seq > ?", st.cursor)
	} else {
		switch o := st.from.(type) {
		case journal.SequenceOffset:
			q = q.Where("global_seq > ?", int64(o))
		case journal.TimeOffset:
			q = q.Where("created_at >= ?", o.Time())
		}
	}
	if !st.live {
		q = q.Where("global_seq <= ?", st.bound)
	}
	var rows []EventModel
	err := q.Order("global_seq asc").Limit(st.s.pageSize).Find(&rows).Error
	return rows, err
}

func (st *eventStream) Next(ctx context.Context) (any, error) {
	for {
		select {
		case <-st.closed:
			return nil, errors.New("gormstore: stream closed")
		default:
		}
		if len(st.buf) > 0 {
			row := st.buf[0]
			st.buf = st.buf[1:]
			st.cursor = row.GlobalSeq
			st.primed = true
			return journal.RawEnvelope{
				Offset:     row.GlobalSeq,
				EntityID:   row.EntityID,
				SequenceNr: row.Seq,
				Payload:    json.RawMessage(row.Payload),
			}, nil
		}
		rows, err := st.fetch(ctx)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			st.buf = rows
			continue
		}
		if !st.live {
			return nil, io.EOF
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-st.closed:
			return nil, errors.New("gormstore: stream closed")
		case <-time.After(st.s.pollInterval):
		}
	}
}

func (st *eventStream) Close() error {
	st.closeOnce.Do(func() { close(st.closed) })
	return nil
}
