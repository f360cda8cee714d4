//go:build unit

package booking_test

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.StateUnassigned, actual.State())
		assert.Nil(t, actual.Reservation())
		assert.Equal(t, b.BookingTime, actual.BookingTime())
		assert.Equal(t, builder.FixedNow, actual.CreatedAt())
		assert.Equal(t, int64(0), actual.Version())
	})

	t.Run("予約日時検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "1分後OK",
				mutate: func(b *builder.BookingBuilder) { b.BookingTime = builder.FixedNow.Add(time.Minute) },
			},
			{
				name:   "現在時刻NG",
				mutate: func(b *builder.BookingBuilder) { b.BookingTime = builder.FixedNow },
				errIs:  booking.ErrBookingTimeNotInFuture,
			},
			{
				name:   "過去NG",
				mutate: func(b *builder.BookingBuilder) { b.BookingTime = builder.FixedNow.Add(-time.Hour) },
				errIs:  booking.ErrBookingTimeNotInFuture,
			},
		})
	})

	t.Run("予約者検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ゲストのみOK",
				mutate: func(b *builder.BookingBuilder) { b.AsGuest() },
			},
			{
				name:   "予約者なしNG",
				mutate: func(b *builder.BookingBuilder) { b.CustomerID = nil },
				errIs:  booking.ErrPartyRequired,
			},
			{
				name: "ゼロUUIDは未指定扱いNG",
				mutate: func(b *builder.BookingBuilder) {
					zero := uuid.Nil
					b.CustomerID = &zero
				},
				errIs: booking.ErrPartyRequired,
			},
			{
				name: "顧客とゲスト両方NG",
				mutate: func(b *builder.BookingBuilder) {
					guest := uuid.New()
					b.GuestID = &guest
				},
				errIs: booking.ErrAmbiguousParty,
			},
		})
	})

	t.Run("人数検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "子供0人OK",
				mutate: func(b *builder.BookingBuilder) { b.ChildrenCount = 0 },
			},
			{
				name:   "大人マイナスNG",
				mutate: func(b *builder.BookingBuilder) { b.AdultsCount = -1 },
				errIs:  booking.ErrNegativeHeadcount,
			},
			{
				name:   "子供マイナスNG",
				mutate: func(b *builder.BookingBuilder) { b.ChildrenCount = -2 },
				errIs:  booking.ErrNegativeHeadcount,
			},
		})
	})

	t.Run("人数未指定時のデフォルト", func(t *testing.T) {
		actual, err := booking.NewBooking(fixedClock(), booking.NewBookingParams{
			RestaurantID: uuid.New(),
			CustomerID:   ptrID(uuid.New()),
			BookingTime:  builder.FixedNow.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, booking.DefaultAdultsCount, actual.AdultsCount())
		assert.Equal(t, 0, actual.ChildrenCount())
	})

	t.Run("料理IDは重複排除", func(t *testing.T) {
		dish := uuid.New()
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.DishIDs = []uuid.UUID{dish, dish}
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{dish}, actual.DishIDs())
	})
}

func TestAssignTables(t *testing.T) {
	now := builder.FixedNow.Add(time.Minute)

	t.Run("未割当から割当へ遷移", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		t1, t2 := uuid.New(), uuid.New()

		require.NoError(t, b.AssignTables([]uuid.UUID{t1, t2}, "", now))

		assert.Equal(t, booking.StateAssigned, b.State())
		assert.Equal(t, booking.StatusTableAssigned, b.Status())
		assert.Equal(t, booking.ReservationReserved, b.Reservation().Status())
		assert.Equal(t, []uuid.UUID{t1, t2}, b.TableIDs())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("再割当は予約を丸ごと置換", func(t *testing.T) {
		old := uuid.New()
		b := builder.NewBookingBuilder().
			WithTables(old).
			WithReservationStatus(booking.ReservationSeated).
			BuildStored()
		next := uuid.New()

		require.NoError(t, b.AssignTables([]uuid.UUID{next}, booking.ReservationConfirmed, now))

		assert.Equal(t, []uuid.UUID{next}, b.TableIDs())
		assert.Equal(t, booking.ReservationConfirmed, b.Reservation().Status())
	})

	t.Run("同じ入力での再適用は同一状態", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		require.NoError(t, b.AssignTables(ids, "", now))
		first := b.TableIDs()
		require.NoError(t, b.AssignTables(ids, "", now))

		if diff := cmp.Diff(first, b.TableIDs()); diff != "" {
			t.Errorf("table ids mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, booking.StatusTableAssigned, b.Status())
	})

	t.Run("重複IDはそのまま保持", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		a := uuid.New()

		require.NoError(t, b.AssignTables([]uuid.UUID{a, a}, "", now))
		assert.Equal(t, 2, b.Reservation().SlotCount())
	})

	t.Run("空リストNGかつ状態不変", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()

		err := b.AssignTables(nil, "", now)
		assert.True(t, errs.Is(err, booking.ErrEmptyTableList))
		assert.Equal(t, booking.StateUnassigned, b.State())
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("呼び出し元のスライス変更は影響しない", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		ids := []uuid.UUID{uuid.New()}
		want := ids[0]

		require.NoError(t, b.AssignTables(ids, "", now))
		ids[0] = uuid.New()

		assert.Equal(t, []uuid.UUID{want}, b.TableIDs())
	})
}

func TestSetReservationStatus(t *testing.T) {
	now := builder.FixedNow.Add(time.Minute)

	t.Run("ステータス更新でテーブルは保持", func(t *testing.T) {
		tableID := uuid.New()
		b := builder.NewBookingBuilder().WithTables(tableID).BuildStored()

		require.NoError(t, b.SetReservationStatus(booking.ReservationConfirmed, now))

		assert.Equal(t, booking.ReservationConfirmed, b.Reservation().Status())
		assert.Equal(t, []uuid.UUID{tableID}, b.TableIDs())
		assert.Equal(t, booking.StatusTableAssigned, b.Status())
	})

	t.Run("未知のステータスも受理", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithTables(uuid.New()).BuildStored()

		require.NoError(t, b.SetReservationStatus("LATE", now))
		assert.Equal(t, booking.ReservationStatus("LATE"), b.Reservation().Status())
		assert.False(t, b.Reservation().Status().IsKnown())
	})

	t.Run("予約未割当NGかつ状態不変", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		before := b.UpdatedAt()

		err := b.SetReservationStatus(booking.ReservationConfirmed, now)
		assert.True(t, errs.Is(err, booking.ErrReservationNotFound))
		assert.Nil(t, b.Reservation())
		assert.Equal(t, before, b.UpdatedAt())
	})

	t.Run("空ステータスNG", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithTables(uuid.New()).BuildStored()

		err := b.SetReservationStatus("", now)
		assert.True(t, errs.Is(err, booking.ErrEmptyReservationStatus))
		assert.Equal(t, booking.ReservationReserved, b.Reservation().Status())
	})
}

func TestApplyPatch(t *testing.T) {
	now := builder.FixedNow.Add(time.Minute)

	t.Run("指定フィールドのみ更新", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		adults := 6
		note := "  birthday  "

		p := booking.Patch{AdultsCount: &adults, Note: &note}
		require.False(t, p.IsEmpty())
		b.ApplyPatch(p, now)

		assert.Equal(t, 6, b.AdultsCount())
		assert.Equal(t, "birthday", b.Note().String())
		assert.Equal(t, 0, b.ChildrenCount())
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("過去日時への変更も許容", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		past := builder.FixedNow.Add(-48 * time.Hour)

		b.ApplyPatch(booking.Patch{BookingTime: &past}, now)
		assert.Equal(t, past, b.BookingTime())
	})

	t.Run("空パッチ判定", func(t *testing.T) {
		assert.True(t, booking.Patch{}.IsEmpty())
	})
}

func TestReservationStateTransitions(t *testing.T) {
	assert.True(t, booking.StateUnassigned.CanTransitionTo(booking.StateAssigned))
	assert.True(t, booking.StateAssigned.CanTransitionTo(booking.StateAssigned))
	assert.False(t, booking.StateAssigned.CanTransitionTo(booking.StateUnassigned))
	assert.False(t, booking.StateUnassigned.CanTransitionTo(booking.StateUnassigned))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, booking.StatusCancelled, booking.NormalizeStatus(" cancelled "))
	assert.True(t, booking.NormalizeStatus("completed").IsValid())
	assert.False(t, booking.NormalizeStatus("archived").IsValid())
	assert.Equal(t, booking.ReservationNoShow, booking.ParseReservationStatus(" NO_SHOW "))
	assert.Equal(t, booking.ReservationStatus("no_show"), booking.ParseReservationStatus("no_show"))
	assert.False(t, booking.ParseReservationStatus("seated").IsKnown())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
