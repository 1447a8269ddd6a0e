package handlers

import (
	"profast/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Function-backed fakes for the repository interfaces. A nil function means
// the test does not expect that call; the zero values are returned so the
// call count assertions catch the mistake instead of a panic.

type fakeParcelRepo struct {
	listFn     func(email string) ([]bson.M, error)
	getFn      func(id string) (bson.M, error)
	insertFn   func(doc bson.M) (string, error)
	deleteFn   func(id string) (int64, error)
	markPaidFn func(id string) (int64, error)
}

func (f *fakeParcelRepo) ListByOwner(email string) ([]bson.M, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(email)
}

func (f *fakeParcelRepo) GetByID(id string) (bson.M, error) {
	if f.getFn == nil {
		return nil, nil
	}
	return f.getFn(id)
}

func (f *fakeParcelRepo) Insert(doc bson.M) (string, error) {
	if f.insertFn == nil {
		return "", nil
	}
	return f.insertFn(doc)
}

func (f *fakeParcelRepo) Delete(id string) (int64, error) {
	if f.deleteFn == nil {
		return 0, nil
	}
	return f.deleteFn(id)
}

func (f *fakeParcelRepo) MarkPaid(id string) (int64, error) {
	if f.markPaidFn == nil {
		return 0, nil
	}
	return f.markPaidFn(id)
}

type fakePaymentRepo struct {
	insertFn func(payment *models.Payment) (string, error)
	listFn   func(email string) ([]models.Payment, error)
}

func (f *fakePaymentRepo) Insert(payment *models.Payment) (string, error) {
	if f.insertFn == nil {
		return "", nil
	}
	return f.insertFn(payment)
}

func (f *fakePaymentRepo) ListByEmail(email string) ([]models.Payment, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(email)
}

type fakeTrackingRepo struct {
	appendFn func(entry *models.TrackingEntry) (string, error)
}

func (f *fakeTrackingRepo) Append(entry *models.TrackingEntry) (string, error) {
	if f.appendFn == nil {
		return "", nil
	}
	return f.appendFn(entry)
}

type fakeUserRepo struct {
	findFn   func(email string) (bson.M, error)
	insertFn func(doc bson.M) (string, error)
}

func (f *fakeUserRepo) FindByEmail(email string) (bson.M, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(email)
}

func (f *fakeUserRepo) Insert(doc bson.M) (string, error) {
	if f.insertFn == nil {
		return "", nil
	}
	return f.insertFn(doc)
}

type fakeRiderRepo struct {
	insertFn      func(doc bson.M) (string, error)
	listPendingFn func() ([]bson.M, error)
	approveFn     func(id string) (int64, error)
	deleteFn      func(id string) (int64, error)
}

func (f *fakeRiderRepo) Insert(doc bson.M) (string, error) {
	if f.insertFn == nil {
		return "", nil
	}
	return f.insertFn(doc)
}

func (f *fakeRiderRepo) ListPending() ([]bson.M, error) {
	if f.listPendingFn == nil {
		return nil, nil
	}
	return f.listPendingFn()
}

func (f *fakeRiderRepo) Approve(id string) (int64, error) {
	if f.approveFn == nil {
		return 0, nil
	}
	return f.approveFn(id)
}

func (f *fakeRiderRepo) Delete(id string) (int64, error) {
	if f.deleteFn == nil {
		return 0, nil
	}
	return f.deleteFn(id)
}
