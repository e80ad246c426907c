package model

type Category struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Catalog is the fixed set of categories and authors posts refer to.
type Catalog struct {
	Categories []Category `json:"categories"`
	Authors    []Author   `json:"authors"`
}

func (c Catalog) CategoryByID(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}

func (c Catalog) CategoryBySlug(slug string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Slug == slug {
			return &c.Categories[i]
		}
	}
	return nil
}

func (c Catalog) AuthorByID(id string) *Author {
	for i := range c.Authors {
		if c.Authors[i].ID == id {
			return &c.Authors[i]
		}
	}
	return nil
}
