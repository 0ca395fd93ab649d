package api

import (
	"github.com/aep-dev/aep-resourcename-go/pkg/prototest"
	"google.golang.org/genproto/googleapis/api/annotations"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ExampleFiles returns a small library API spread over two files of the
// same Go package, plus a third file in another package that references it.
//
//   - publisher: publishers/{publisher}
//   - book: publishers/{publisher}/books/{book}
//   - book-edition: publishers/{publisher}/books/{book}/editions/{edition}
//   - shelf: projects/{project}/shelves/{shelf} or users/{user}/shelves/{shelf}
func ExampleFiles() []*descriptorpb.FileDescriptorProto {
	publisher := prototest.ResourceDescriptor("Publisher", &annotations.ResourceDescriptor{
		Type:     "library.example.com/Publisher",
		Pattern:  []string{"publishers/{publisher}"},
		Singular: "publisher",
		Plural:   "publishers",
	})
	book := prototest.ResourceDescriptor("Book", &annotations.ResourceDescriptor{
		Type:     "library.example.com/Book",
		Pattern:  []string{"publishers/{publisher}/books/{book}"},
		Singular: "book",
		Plural:   "books",
	})
	book.AddField(prototest.ReferenceField("shelf", 2, "library.example.com/Shelf"))
	listBooks := prototest.Message("ListBooksRequest",
		prototest.ChildReferenceField("parent", 1, "library.example.com/Book"),
		prototest.StringField("page_token", 2),
	)
	library := prototest.NewFile("library/v1/library.proto", "library.v1", "example.com/library/v1;libraryv1").
		AddMessage(publisher).
		AddMessage(book).
		AddMessage(listBooks).
		MustProto()

	edition := prototest.ResourceDescriptor("BookEdition", &annotations.ResourceDescriptor{
		Type:     "library.example.com/BookEdition",
		Pattern:  []string{"publishers/{publisher}/books/{book}/editions/{edition}"},
		Singular: "bookEdition",
		Plural:   "bookEditions",
	})
	shelf := prototest.ResourceDescriptor("Shelf", &annotations.ResourceDescriptor{
		Type:     "library.example.com/Shelf",
		Pattern:  []string{"projects/{project}/shelves/{shelf}", "users/{user}/shelves/{shelf}"},
		Singular: "shelf",
		Plural:   "shelves",
	})
	shelves := prototest.NewFile("library/v1/shelf.proto", "library.v1", "example.com/library/v1;libraryv1").
		AddMessage(edition).
		AddMessage(shelf).
		MustProto()

	review := prototest.Message("Review",
		prototest.ReferenceField("book", 1, "library.example.com/Book"),
		prototest.ReferenceField("reviewer", 2, "people.example.com/Person"),
		prototest.ReferenceField("subject", 3, AnyType),
	)
	reviews := prototest.NewFile("reviews/v1/review.proto", "reviews.v1", "example.com/reviews/v1;reviewsv1").
		AddMessage(review).
		MustProto()

	return []*descriptorpb.FileDescriptorProto{library, shelves, reviews}
}

// ExampleAPI builds the model of ExampleFiles.
func ExampleAPI() *API {
	a, err := Load(ExampleFiles(), nil)
	if err != nil {
		panic(err)
	}
	return a
}
