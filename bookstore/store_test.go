package bookstore_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/book-records-go/bookstore"
	"github.com/AntonStoeckl/book-records-go/testutil/helper"
)

/***** construction *****/

func Test_NewStore_RejectsInvalidOptions(t *testing.T) {
	testCases := []struct {
		description string
		option      bookstore.Option
		expectedErr error
	}{
		{description: "zero capacity", option: bookstore.WithCapacity(0), expectedErr: bookstore.ErrInvalidCapacity},
		{description: "negative capacity", option: bookstore.WithCapacity(-3), expectedErr: bookstore.ErrInvalidCapacity},
		{description: "nil id generator", option: bookstore.WithIDGenerator(nil), expectedErr: bookstore.ErrNilIDGenerator},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			store, err := bookstore.NewStore(tc.option)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, store)
		})
	}
}

func Test_Stores_AreIndependent(t *testing.T) {
	ctx := t.Context()
	first, _ := helper.GivenStoreWithDemoBooks(t, ctx)
	second, err := bookstore.NewStore()
	require.NoError(t, err)

	assert.Equal(t, 3, first.Len())
	assert.Equal(t, 0, second.Len())

	_, _, err = second.AddBook(ctx, "Harry potter", 1, "Someone else", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	assert.NoError(t, err)
}

/***** create and insert *****/

func Test_CreateBook_ReturnsUnlinkedRecord(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore(bookstore.WithIDGenerator(helper.SequentialIDGenerator()))
	require.NoError(t, err)

	// act
	book, err := store.CreateBook(ctx, " Dune ", 412, "Frank Herbert", 1999, helper.GivenPublishDate(t, 1, 8, 1965))

	// assert
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, helper.TitlesInOrder(store))
}

func Test_CreateBook_RejectsDuplicateTitle_StoreUnchanged(t *testing.T) {
	testCases := []struct {
		description string
		title       string
	}{
		{description: "exact title", title: "Harry potter"},
		{description: "title with surrounding whitespace", title: "  Harry potter\t"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// setup
			ctx := t.Context()
			store, _ := helper.GivenStoreWithDemoBooks(t, ctx)

			// act
			book, err := store.CreateBook(ctx, tc.title, 1, "Someone", 1, helper.GivenPublishDate(t, 1, 1, 2001))

			// assert
			assert.ErrorIs(t, err, bookstore.ErrDuplicateTitle)
			assert.ErrorContains(t, err, `"Harry potter"`)
			assert.Equal(t, bookstore.Book{}, book)
			assert.Equal(t, 3, store.Len())
			assert.Equal(t, []string{"Harry potter", "Game of thrones", "Lord of the rings"}, helper.TitlesInOrder(store))
		})
	}
}

func Test_CreateBook_TitleComparisonIsCaseSensitive(t *testing.T) {
	ctx := t.Context()
	store, _ := helper.GivenStoreWithDemoBooks(t, ctx)

	_, _, err := store.AddBook(ctx, "harry potter", 1, "Someone", 1, helper.GivenPublishDate(t, 1, 1, 2001))

	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())
}

func Test_CreateBook_RejectsInvalidInput(t *testing.T) {
	ctx := t.Context()
	store, err := bookstore.NewStore()
	require.NoError(t, err)

	_, err = store.CreateBook(ctx, "   ", 1, "Someone", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	assert.ErrorIs(t, err, bookstore.ErrEmptyTitle)

	_, err = store.CreateBook(ctx, "Dune", 1, "", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	assert.ErrorIs(t, err, bookstore.ErrEmptyAuthor)

	_, err = store.CreateBook(ctx, "Dune", 1, "Someone", 1, bookstore.PublishDate{})
	assert.ErrorIs(t, err, bookstore.ErrInvalidPublishDate)
}

func Test_CreateBook_TruncatedTitleTakesPartInUniqueness(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore()
	require.NoError(t, err)

	base := strings.Repeat("x", bookstore.MaxTitleLength)
	_, _, err = store.AddBook(ctx, base+"-first", 1, "A", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	require.NoError(t, err)

	// act
	_, err = store.CreateBook(ctx, base+"-second", 1, "A", 1, helper.GivenPublishDate(t, 1, 1, 2001))

	// assert
	assert.ErrorIs(t, err, bookstore.ErrDuplicateTitle)
	assert.Equal(t, []string{base}, helper.TitlesInOrder(store))
}

func Test_CreateBook_TitleCutOnWhitespaceIsFindableAndUnique(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore()
	require.NoError(t, err)

	prefix := strings.Repeat("a", bookstore.MaxTitleLength-1)
	publishDate := helper.GivenPublishDate(t, 1, 1, 2001)

	// arrange
	handle, stored, err := store.AddBook(ctx, prefix+" tail", 1, "A", 1, publishDate)
	require.NoError(t, err)

	// assert
	assert.Equal(t, prefix, stored.Title)

	foundHandle, found, err := store.FindBookByTitle(ctx, stored.Title)
	require.NoError(t, err)
	assert.Equal(t, handle, foundHandle)
	assert.Equal(t, stored, found)

	testCases := []struct {
		description string
		title       string
	}{
		{description: "the kept prefix", title: prefix},
		{description: "the same long title", title: prefix + " tail"},
		{description: "another tail after the space", title: prefix + " other"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			_, err := store.CreateBook(ctx, tc.title, 1, "A", 1, publishDate)

			// assert
			assert.ErrorIs(t, err, bookstore.ErrDuplicateTitle)
			assert.Equal(t, []string{prefix}, helper.TitlesInOrder(store))
		})
	}
}

func Test_InsertBook_KeepsInsertionOrder(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore()
	require.NoError(t, err)

	fixtures := helper.GivenNumberedBooks(10)
	expected := make([]string, 0, len(fixtures))

	// act
	for _, fixture := range fixtures {
		helper.GivenBookWasAdded(t, ctx, store, fixture)
		expected = append(expected, fixture.Title)
	}

	// assert
	assert.Equal(t, 10, store.Len())
	assert.Equal(t, expected, helper.TitlesInOrder(store))
}

func Test_InsertBook_DoesNotCheckForDuplicates(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	duplicate, _, err := bookstore.BuildBook("Harry potter", 1, "Impostor", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	require.NoError(t, err)

	// act
	_, err = store.InsertBook(ctx, duplicate)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())

	handle, book, err := store.FindBookByTitle(ctx, "Harry potter")
	require.NoError(t, err)
	assert.Equal(t, handles[0], handle, "the first match in traversal order wins")
	assert.Equal(t, "J.K Rowling", book.Author)
}

/***** capacity *****/

func Test_Capacity_ExhaustionAndSlotReuse(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore(bookstore.WithCapacity(2))
	require.NoError(t, err)

	first := helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[0])
	helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[1])

	// act
	_, _, err = store.AddBook(ctx, "Lord of the rings", 5000, "Aneesha Rama", 3470, helper.GivenPublishDate(t, 15, 4, 2015))

	// assert
	require.ErrorIs(t, err, bookstore.ErrAllocationFailed)
	assert.Equal(t, 2, store.Len())

	// act
	require.NoError(t, store.RemoveBook(ctx, first))
	third := helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[2])

	// assert
	assert.Equal(t, []string{"Game of thrones", "Lord of the rings"}, helper.TitlesInOrder(store))
	assert.NotEqual(t, first, third, "a reused slot hands out a new Handle")

	_, err = store.Book(first)
	assert.ErrorIs(t, err, bookstore.ErrNotFound)
}

func Test_InsertBook_FailsWhenFull(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore(bookstore.WithCapacity(1))
	require.NoError(t, err)

	first, err := store.CreateBook(ctx, "First", 1, "A", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	require.NoError(t, err)
	second, err := store.CreateBook(ctx, "Second", 1, "A", 1, helper.GivenPublishDate(t, 1, 1, 2001))
	require.NoError(t, err)

	_, err = store.InsertBook(ctx, first)
	require.NoError(t, err)

	// act
	handle, err := store.InsertBook(ctx, second)

	// assert
	assert.ErrorIs(t, err, bookstore.ErrAllocationFailed)
	assert.True(t, handle.IsZero())
	assert.Equal(t, []string{"First"}, helper.TitlesInOrder(store))
}

/***** lookup *****/

func Test_FindBookByTitle(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	// act
	handle, book, err := store.FindBookByTitle(ctx, " \tGame of thrones\n")

	// assert
	require.NoError(t, err)
	assert.Equal(t, handles[1], handle)
	assert.Equal(t, "Game of thrones", book.Title)
	assert.Equal(t, "James Gosling", book.Author)
	assert.Equal(t, 3400, book.Pages)
	assert.Equal(t, 1800, book.Price)
	assert.Equal(t, "21-11-2008", book.PublishDate.String())
}

func Test_FindBookByTitle_NotFound(t *testing.T) {
	ctx := t.Context()
	filled, _ := helper.GivenStoreWithDemoBooks(t, ctx)
	empty, err := bookstore.NewStore()
	require.NoError(t, err)

	testCases := []struct {
		description    string
		store          *bookstore.Store
		key            string
		expectedReason string
	}{
		{description: "empty store", store: empty, key: "Harry potter", expectedReason: "empty list"},
		{description: "empty key", store: filled, key: "", expectedReason: "empty key"},
		{description: "whitespace key", store: filled, key: "   ", expectedReason: "empty key"},
		{description: "unknown title", store: filled, key: "Dune", expectedReason: `title "Dune"`},
		{description: "different case", store: filled, key: "HARRY POTTER", expectedReason: `title "HARRY POTTER"`},
		{description: "prefix only", store: filled, key: "Harry", expectedReason: `title "Harry"`},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			lenBefore := tc.store.Len()

			handle, book, err := tc.store.FindBookByTitle(ctx, tc.key)

			assert.ErrorIs(t, err, bookstore.ErrNotFound)
			assert.ErrorContains(t, err, tc.expectedReason)
			assert.True(t, handle.IsZero())
			assert.Equal(t, bookstore.Book{}, book)
			assert.Equal(t, lenBefore, tc.store.Len())
		})
	}
}

func Test_Book_ReturnsACopy(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	// act
	book, err := store.Book(handles[2])
	require.NoError(t, err)
	book.Title = "changed"

	// assert
	stored, err := store.Book(handles[2])
	require.NoError(t, err)
	assert.Equal(t, "Lord of the rings", stored.Title)
}

func Test_Book_RejectsZeroHandle(t *testing.T) {
	store, _ := helper.GivenStoreWithDemoBooks(t, t.Context())

	_, err := store.Book(bookstore.Handle{})

	assert.ErrorIs(t, err, bookstore.ErrNotFound)
}

/***** update *****/

func Test_UpdateTitle(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	// act
	err := store.UpdateTitle(ctx, handles[1], "  A Game of Thrones ")

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Harry potter", "A Game of Thrones", "Lord of the rings"}, helper.TitlesInOrder(store))

	_, _, err = store.FindBookByTitle(ctx, "Game of thrones")
	assert.ErrorIs(t, err, bookstore.ErrNotFound)

	handle, _, err := store.FindBookByTitle(ctx, "A Game of Thrones")
	require.NoError(t, err)
	assert.Equal(t, handles[1], handle)
}

func Test_UpdateTitle_ToItsOwnTitle(t *testing.T) {
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	err := store.UpdateTitle(ctx, handles[0], "Harry potter")

	assert.NoError(t, err)
}

func Test_UpdateTitle_RejectsDuplicate_StoreUnchanged(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	// act
	err := store.UpdateTitle(ctx, handles[2], " Harry potter ")

	// assert
	assert.ErrorIs(t, err, bookstore.ErrDuplicateTitle)
	assert.Equal(t, []string{"Harry potter", "Game of thrones", "Lord of the rings"}, helper.TitlesInOrder(store))
}

func Test_UpdateTitle_RejectsEmptyTitle(t *testing.T) {
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	err := store.UpdateTitle(ctx, handles[0], "\t\n")

	assert.ErrorIs(t, err, bookstore.ErrEmptyTitle)
	assert.Equal(t, "Harry potter", helper.TitlesInOrder(store)[0])
}

func Test_UpdateTitle_TruncatesLongTitle(t *testing.T) {
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	err := store.UpdateTitle(ctx, handles[0], strings.Repeat("y", bookstore.MaxTitleLength*2))

	require.NoError(t, err)
	book, err := store.Book(handles[0])
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("y", bookstore.MaxTitleLength), book.Title)
}

func Test_UpdateTitle_TitleCutOnWhitespace(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	prefix := strings.Repeat("z", bookstore.MaxTitleLength-1)

	// act
	err := store.UpdateTitle(ctx, handles[0], prefix+" tail")

	// assert
	require.NoError(t, err)
	book, err := store.Book(handles[0])
	require.NoError(t, err)
	assert.Equal(t, prefix, book.Title)

	foundHandle, _, err := store.FindBookByTitle(ctx, book.Title)
	require.NoError(t, err)
	assert.Equal(t, handles[0], foundHandle)

	err = store.UpdateTitle(ctx, handles[1], prefix)
	assert.ErrorIs(t, err, bookstore.ErrDuplicateTitle)
}

func Test_UpdateTitle_RejectsStaleHandle(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	require.NoError(t, store.RemoveBook(ctx, handles[1]))

	// act
	err := store.UpdateTitle(ctx, handles[1], "Resurrected")

	// assert
	assert.ErrorIs(t, err, bookstore.ErrNotFound)
	assert.Equal(t, []string{"Harry potter", "Lord of the rings"}, helper.TitlesInOrder(store))
}

/***** removal *****/

func Test_RemoveBook_PreservesOrderOfTheRest(t *testing.T) {
	testCases := []struct {
		description string
		remove      int
		expected    []string
	}{
		{description: "head", remove: 0, expected: []string{"Game of thrones", "Lord of the rings"}},
		{description: "middle", remove: 1, expected: []string{"Harry potter", "Lord of the rings"}},
		{description: "tail", remove: 2, expected: []string{"Harry potter", "Game of thrones"}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// setup
			ctx := t.Context()
			store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

			// act
			err := store.RemoveBook(ctx, handles[tc.remove])

			// assert
			require.NoError(t, err)
			assert.Equal(t, 2, store.Len())
			assert.Equal(t, tc.expected, helper.TitlesInOrder(store))

			// an append after the removal still goes to the end
			helper.GivenBookWasAdded(t, ctx, store, helper.BookFixture{Title: "Dune", Pages: 412, Author: "Frank Herbert", Price: 1999, Day: 1, Month: 8, Year: 1965})
			assert.Equal(t, append(tc.expected, "Dune"), helper.TitlesInOrder(store))
		})
	}
}

func Test_RemoveBook_AllRecordsOneByOne(t *testing.T) {
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	for i, handle := range handles {
		require.NoError(t, store.RemoveBook(ctx, handle))
		assert.Equal(t, len(handles)-i-1, store.Len())
	}

	assert.Empty(t, helper.TitlesInOrder(store))

	helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[0])
	assert.Equal(t, []string{"Harry potter"}, helper.TitlesInOrder(store))
}

func Test_RemoveBook_OnEmptyStore(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	store.Clear(ctx)

	testCases := []struct {
		description    string
		handle         bookstore.Handle
		expectedReason string
	}{
		{description: "zero handle", handle: bookstore.Handle{}, expectedReason: "no book found"},
		{description: "stale handle", handle: handles[0], expectedReason: "empty list"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := store.RemoveBook(ctx, tc.handle)

			assert.ErrorIs(t, err, bookstore.ErrInvalidRemoval)
			assert.ErrorContains(t, err, tc.expectedReason)
		})
	}
}

func Test_RemoveBook_AbsentTarget(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	require.NoError(t, store.RemoveBook(ctx, handles[0]))

	testCases := []struct {
		description string
		handle      bookstore.Handle
	}{
		{description: "already removed", handle: handles[0]},
		{description: "zero handle", handle: bookstore.Handle{}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := store.RemoveBook(ctx, tc.handle)

			assert.ErrorIs(t, err, bookstore.ErrNotFound)
			assert.NotErrorIs(t, err, bookstore.ErrInvalidRemoval)
			assert.Equal(t, []string{"Game of thrones", "Lord of the rings"}, helper.TitlesInOrder(store))
		})
	}
}

func Test_Handle_StaysStaleAfterSlotReuse(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	require.NoError(t, store.RemoveBook(ctx, handles[1]))

	// act
	reused := helper.GivenBookWasAdded(t, ctx, store, helper.BookFixture{Title: "Dune", Pages: 412, Author: "Frank Herbert", Price: 1999, Day: 1, Month: 8, Year: 1965})

	// assert
	_, err := store.Book(handles[1])
	assert.ErrorIs(t, err, bookstore.ErrNotFound)

	assert.ErrorIs(t, store.RemoveBook(ctx, handles[1]), bookstore.ErrNotFound)

	book, err := store.Book(reused)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
}

/***** enumeration and listing *****/

func Test_Books_IsRestartableAndStopsEarly(t *testing.T) {
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	var firstPass []bookstore.Handle
	for handle := range store.Books() {
		firstPass = append(firstPass, handle)
		if len(firstPass) == 2 {
			break
		}
	}

	var secondPass []bookstore.Handle
	for handle := range store.Books() {
		secondPass = append(secondPass, handle)
	}

	assert.Equal(t, handles[:2], firstPass)
	assert.Equal(t, handles, secondPass)
}

func Test_Books_RemovingTheYieldedRecordIsSafe(t *testing.T) {
	ctx := t.Context()
	store, _ := helper.GivenStoreWithDemoBooks(t, ctx)

	visited := 0
	for handle := range store.Books() {
		visited++
		require.NoError(t, store.RemoveBook(ctx, handle))
	}

	assert.Equal(t, 3, visited)
	assert.Equal(t, 0, store.Len())
}

func Test_ListAllBooks_EmptyStore(t *testing.T) {
	store, err := bookstore.NewStore()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, store.ListAllBooks(t.Context(), &out))

	assert.Equal(t, "No books found\n", out.String())
}

func Test_ListAllBooks_ReturnsWriteError(t *testing.T) {
	store, _ := helper.GivenStoreWithDemoBooks(t, t.Context())

	err := store.ListAllBooks(t.Context(), failingWriter{})

	assert.ErrorIs(t, err, errWriteFailed)
}

func Test_GetBookInfo(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	var out bytes.Buffer

	// act
	err := store.GetBookInfo(ctx, &out, handles[2])

	// assert
	require.NoError(t, err)
	assert.Equal(t, lordOfTheRingsBlock, out.String())
}

func Test_GetBookInfo_StaleHandlePrintsNothing(t *testing.T) {
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)
	require.NoError(t, store.RemoveBook(ctx, handles[2]))

	var out bytes.Buffer
	err := store.GetBookInfo(ctx, &out, handles[2])

	assert.ErrorIs(t, err, bookstore.ErrNotFound)
	assert.Empty(t, out.String())
}

/***** clear *****/

func Test_Clear(t *testing.T) {
	// setup
	ctx := t.Context()
	store, handles := helper.GivenStoreWithDemoBooks(t, ctx)

	// act
	store.Clear(ctx)

	// assert
	assert.Equal(t, 0, store.Len())
	for _, handle := range handles {
		_, err := store.Book(handle)
		assert.ErrorIs(t, err, bookstore.ErrNotFound)
	}

	helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[0])
	assert.Equal(t, []string{"Harry potter"}, helper.TitlesInOrder(store))
}

/***** end to end *****/

func Test_DemoScenario(t *testing.T) {
	// setup
	ctx := t.Context()
	store, err := bookstore.NewStore()
	require.NoError(t, err)

	// act & assert
	harry := helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[0])

	_, _, err = store.AddBook(ctx, "Harry potter", 2000, "J.K Rowling", 560, helper.GivenPublishDate(t, 1, 8, 1990))
	require.ErrorIs(t, err, bookstore.ErrDuplicateTitle)
	assert.Equal(t, 1, store.Len())

	helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[1])
	helper.GivenBookWasAdded(t, ctx, store, helper.DemoBooks[2])

	found, book, err := store.FindBookByTitle(ctx, "Harry potter")
	require.NoError(t, err)
	assert.Equal(t, harry, found)
	assert.Equal(t, "J.K Rowling", book.Author)

	require.NoError(t, store.RemoveBook(ctx, found))
	assert.Equal(t, []string{"Game of thrones", "Lord of the rings"}, helper.TitlesInOrder(store))

	var out bytes.Buffer
	require.NoError(t, store.ListAllBooks(ctx, &out))
	assert.Equal(t, gameOfThronesBlock+lordOfTheRingsBlock, out.String())
}
