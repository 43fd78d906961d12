package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 10

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100
