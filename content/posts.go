// Package content holds the CMS-lite blog data. Posts are constant data
// compiled into the binary, exactly as the storefront keeps them; there is no
// authoring surface.
package content

import "sort"

type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"` // sanitized HTML fragments
	Author   string `json:"author"`
	Date     string `json:"date"` // ISO date
	ImageURL string `json:"imageUrl"`
}

var blogPosts = []BlogPost{
	{
		ID:      "blog-3",
		Title:   "Natural Stone vs. Ceramic Tiles: Which is Right for You?",
		Excerpt: "Debating between the raw beauty of stone and the durability of ceramic? We break down the pros and cons of each to help you decide.",
		Content: `<p class="lead">Choosing between natural stone and ceramic tiles is one of the biggest decisions you'll make for your renovation. Both have distinct advantages, but the right choice depends heavily on your lifestyle, budget, and the specific room you are designing.</p>
<h3>The Case for Natural Stone</h3>
<p>No two pieces of marble, travertine or slate are ever the same. Stone brings depth and a sense of permanence that manufactured surfaces struggle to match, and it can be re-honed decades after installation.</p>
<h3>The Case for Ceramic</h3>
<p>Ceramic and porcelain are consistent, hard-wearing and far easier to maintain. For kitchens, laundries and high-traffic hallways they remain the practical favourite.</p>
<p>If you are still unsure, order samples of both and live with them for a week before committing.</p>`,
		Author:   "Wemisi Editorial",
		Date:     "2024-03-18",
		ImageURL: "https://picsum.photos/seed/blogstone/800/450",
	},
	{
		ID:      "blog-2",
		Title:   "How to Choose the Perfect Marble for Your Countertops",
		Excerpt: "Carrara, Calacatta or Emperador? A short field guide to reading veining, finish and porosity before you buy.",
		Content: `<p class="lead">Marble is graded by its veining, base colour and porosity, and the differences matter more than the brochure photos suggest.</p>
<p>Lighter marbles like Carrara suit bright, airy kitchens but show staining sooner. Darker stones such as Emperador forgive daily use and pair well with brass fittings. Always ask to see the actual slab you are buying, not a sample chip.</p>`,
		Author:   "Wemisi Editorial",
		Date:     "2024-01-29",
		ImageURL: "https://picsum.photos/seed/blogmarble/800/450",
	},
	{
		ID:      "blog-1",
		Title:   "Five Fencing Materials Compared for Kenyan Weather",
		Excerpt: "Slate, wrought iron, timber, stone and precast: how each option handles sun, rain and time.",
		Content: `<p class="lead">A fence is a twenty-year purchase, so it pays to match the material to the climate and not just the catalogue.</p>
<p>Wrought iron needs repainting but never rots; slate panels shrug off rain entirely; timber is the cheapest up front and the dearest over a decade. For coastal plots, stone and precast remain the low-maintenance choices.</p>`,
		Author:   "Wemisi Editorial",
		Date:     "2023-11-12",
		ImageURL: "https://picsum.photos/seed/blogfence/800/450",
	},
}

// Posts returns all posts, newest first. Callers get a copy; the backing
// data is immutable.
func Posts() []BlogPost {
	out := make([]BlogPost, len(blogPosts))
	copy(out, blogPosts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// PostByID looks up a single post.
func PostByID(id string) (BlogPost, bool) {
	for _, p := range blogPosts {
		if p.ID == id {
			return p, true
		}
	}
	return BlogPost{}, false
}
