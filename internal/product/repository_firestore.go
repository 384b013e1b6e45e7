package product

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const productsCollection = "products"

// FirestoreRepository reads products from the hosted store.
type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) col() *firestore.CollectionRef {
	return r.client.Collection(productsCollection)
}

func (r *FirestoreRepository) GetByID(ctx context.Context, id string) (Product, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return fromSnapshot(snap)
}

func (r *FirestoreRepository) List(ctx context.Context) ([]Product, error) {
	it := r.col().Documents(ctx)
	defer it.Stop()

	out := make([]Product, 0)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func fromSnapshot(snap *firestore.DocumentSnapshot) (Product, error) {
	var p Product
	if err := snap.DataTo(&p); err != nil {
		return Product{}, err
	}
	// docId is the source of truth
	p.ID = snap.Ref.ID
	return p, nil
}
