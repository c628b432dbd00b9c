package store_test

import (
	"context"
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/store"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

func newLedger(ctx context.Context) (*sql.DB, *store.Store) {
	db, err := store.NewDB(":memory:")
	Expect(err).NotTo(HaveOccurred())

	s := store.NewStore(db)
	Expect(s.Migrate(ctx)).To(Succeed())
	return db, s
}

var _ = Describe("InstanceStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, s = newLedger(ctx)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty ledger
		// When we get an unknown instance
		// Then it should return ResourceNotFoundError
		It("should return ResourceNotFoundError for an unknown instance", func() {
			// Act
			_, err := s.Instances().Get(ctx, "i-missing")

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Save", func() {
		// Given a new instance record
		// When we save and read it back
		// Then every field should round trip
		It("should insert a new instance", func() {
			// Arrange
			rec := models.InstanceRecord{
				ID:              "i-1",
				PublicDNSName:   "ip-10-0-0-1.aws.natinst.com",
				ImageID:         "ami-1",
				InstanceType:    "m5.xlarge",
				State:           "running",
				SuiteBuild:      "19.6.0",
				TerminationDate: "2026-10-19",
			}

			// Act
			err := s.Instances().Save(ctx, rec)
			Expect(err).NotTo(HaveOccurred())
			got, err := s.Instances().Get(ctx, "i-1")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(got.PublicDNSName).To(Equal(rec.PublicDNSName))
			Expect(got.ImageID).To(Equal("ami-1"))
			Expect(got.InstanceType).To(Equal("m5.xlarge"))
			Expect(got.State).To(Equal("running"))
			Expect(got.SuiteBuild).To(Equal("19.6.0"))
			Expect(got.TerminationDate).To(Equal("2026-10-19"))
			Expect(got.CreatedAt).NotTo(BeZero())
		})

		// Given an existing instance
		// When we save it again with new values
		// Then the row should be updated in place
		It("should update an existing instance", func() {
			// Arrange
			Expect(s.Instances().Save(ctx, models.InstanceRecord{ID: "i-1", State: "pending"})).To(Succeed())

			// Act
			err := s.Instances().Save(ctx, models.InstanceRecord{ID: "i-1", State: "running", SuiteBuild: "20.0.0"})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			n, err := s.Instances().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			got, err := s.Instances().Get(ctx, "i-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.State).To(Equal("running"))
			Expect(got.SuiteBuild).To(Equal("20.0.0"))
		})

		It("should reject a record without id", func() {
			err := s.Instances().Save(ctx, models.InstanceRecord{State: "running"})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("SetState", func() {
		// Given two saved instances
		// When we mark one terminated
		// Then only that instance changes state
		It("should update only the named instances", func() {
			// Arrange
			Expect(s.Instances().Save(ctx, models.InstanceRecord{ID: "i-1", State: "running"})).To(Succeed())
			Expect(s.Instances().Save(ctx, models.InstanceRecord{ID: "i-2", State: "running"})).To(Succeed())

			// Act
			err := s.Instances().SetState(ctx, "terminated", "i-1", "i-unknown")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			terminated, err := s.Instances().List(ctx, store.ByStates("terminated"))
			Expect(err).NotTo(HaveOccurred())
			Expect(terminated).To(HaveLen(1))
			Expect(terminated[0].ID).To(Equal("i-1"))
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
			for i, id := range []string{"i-a", "i-b", "i-c"} {
				err := s.Instances().Save(ctx, models.InstanceRecord{
					ID:        id,
					State:     "running",
					CreatedAt: base.Add(time.Duration(i) * time.Hour),
				})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should return newest first with the default sort", func() {
			got, err := s.Instances().List(ctx, store.WithDefaultSort())

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(3))
			Expect(got[0].ID).To(Equal("i-c"))
			Expect(got[2].ID).To(Equal("i-a"))
		})

		It("should page results", func() {
			got, err := s.Instances().List(ctx,
				store.WithSort([]store.SortParam{{Field: "createdAt"}}),
				store.WithLimit(1),
				store.WithOffset(1),
			)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			Expect(got[0].ID).To(Equal("i-b"))
		})

		It("should filter by id and creation time", func() {
			since := time.Date(2026, 10, 1, 1, 0, 0, 0, time.UTC)

			got, err := s.Instances().List(ctx, store.ByIDs("i-a", "i-c"), store.CreatedSince(since))

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			Expect(got[0].ID).To(Equal("i-c"))
		})

		It("should ignore unknown sort fields", func() {
			Expect(store.SortableField("bogus")).To(BeFalse())

			got, err := s.Instances().List(ctx, store.WithSort([]store.SortParam{{Field: "bogus", Desc: true}}))

			Expect(err).NotTo(HaveOccurred())
			Expect(got[0].ID).To(Equal("i-a"))
		})
	})
})
