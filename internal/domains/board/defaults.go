package board

// Built-in board used when the store is absent on first run.

const (
	colorHome       = "#C3B1E1"
	colorHungry     = "#F3E8FF"
	colorActivities = "#E0F2FE"

	// DefaultPassword gates the settings session until changed
	DefaultPassword = "123"
)

// DefaultPages returns the initial page tree
func DefaultPages() []Page {
	return []Page{
		{
			ID: "home", Path: "/", Title: "Chizenum's Board",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 3, Rows: 3},
			Tiles: []Tile{
				linkTile("b_home_hungry", "Hungry", "hungry"),
				linkTile("b_home_activities", "Activities", "activities"),
				linkTile("b_home_places", "Places", "places"),
				linkTile("b_home_chat", "Chat", "chat"),
				linkTile("b_home_needs", "Needs", "i_need"),
				linkTile("b_home_feelings", "Feelings", "feelings"),
				linkTile("b_home_i_did", "I Did", "I_Did"),
				linkTile("b_home_people", "People", "people"),
				audioTile("b_home_questions", "Question"),
				linkTile("b_home_greetings", "Greetings", "greetings"),
			},
		},
		{
			ID: "greetings", Path: "/p/greetings", Title: "Greetings",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 2, Rows: 1},
			Tiles: []Tile{
				audioTile("greetings_hi", "Hi"),
				audioTile("greetings_bye", "Bye"),
			},
		},
		{
			ID: "hungry", Path: "/p/hungry", Title: "Hungry",
			BackgroundColor: strp(colorHungry),
			Grid:            Grid{Columns: 2, Rows: 3},
			Tiles: []Tile{
				spanTile(linkTile("b_h_rest", "Restaurant", "restaurants"), 2),
				// Meal and Snack speak their labels; their pages still
				// exist but are only reachable through settings.
				audioTile("b_h_meal", "Meal"),
				audioTile("b_h_snack", "Snack"),
				linkTile("b_h_drink", "Drink", "drink"),
				linkTile("b_h_dessert", "Dessert", "dessert"),
			},
		},
		{
			ID: "restaurants", ParentID: strp("hungry"), Path: "/p/restaurants", Title: "Restaurants",
			BackgroundColor: strp(colorHungry),
			Grid:            Grid{Columns: 4, Rows: 3},
			Tiles: []Tile{
				audioTile("r_zaxbys", "Zaxby's"),
				audioTile("r_ihop", "iHOP"),
				audioTile("r_kroger", "Kroger"),
				audioTile("r_applebees", "Applebees"),
				audioTile("r_wendys", "Wendy's"),
				audioTile("r_olive_garden", "Olive Garden"),
				audioTile("r_cheesecake", "Cheescake Factory"),
				audioTile("r_thida_thai", "Thida Thai"),
				audioTile("r_taziki", "Taziki"),
				audioTile("r_panda", "Panda Express"),
				audioTile("r_thai_papaya", "Thai Papaya"),
				audioTile("r_fat_mos", "Fat MO's"),
			},
		},
		{
			ID: "drink", ParentID: strp("hungry"), Path: "/p/drink", Title: "Drink",
			BackgroundColor: strp(colorHungry),
			Grid:            Grid{Columns: 3, Rows: 1},
			Tiles: []Tile{
				audioTile("d_water", "Water"),
				audioTile("d_juice", "Juice"),
				audioTile("d_milk", "Milk"),
			},
		},
		{
			ID: "meal", ParentID: strp("hungry"), Path: "/p/meal", Title: "Meal",
			BackgroundColor: strp(colorHungry),
			Grid:            Grid{Columns: 3, Rows: 1},
			Tiles:           []Tile{audioTile("meal_tbd", "TBD")},
		},
		{
			ID: "snack", ParentID: strp("hungry"), Path: "/p/snack", Title: "Snack",
			BackgroundColor: strp(colorHungry),
			Grid:            Grid{Columns: 3, Rows: 1},
			Tiles:           []Tile{audioTile("snack_tbd", "TBD")},
		},
		{
			ID: "dessert", ParentID: strp("hungry"), Path: "/p/dessert", Title: "Dessert",
			BackgroundColor: strp(colorHungry),
			Grid:            Grid{Columns: 3, Rows: 1},
			Tiles:           []Tile{audioTile("dessert_tbd", "TBD")},
		},
		{
			ID: "activities", Path: "/p/activities", Title: "Activities",
			BackgroundColor: strp(colorActivities),
			Grid:            Grid{Columns: 4, Rows: 2},
			Tiles: []Tile{
				linkTile("a_art", "Art", "art"),
				audioTile("a_yoga", "Yoga"),
				audioTile("a_dance", "Dance"),
				audioTile("a_music", "Music"),
				linkTile("a_tv", "TV", "tv"),
				audioTile("a_walk", "Walk"),
				audioTile("a_pottery", "Pottery"),
				audioTile("a_swim", "Swimming"),
			},
		},
		{
			ID: "art", ParentID: strp("activities"), Path: "/p/art", Title: "Art",
			BackgroundColor: strp(colorActivities),
			Grid:            Grid{Columns: 3, Rows: 1},
			Tiles: []Tile{
				audioTile("art_draw", "Draw"),
				audioTile("art_color", "Color"),
				audioTile("art_paint", "Paint"),
			},
		},
		{
			ID: "tv", ParentID: strp("activities"), Path: "/p/tv", Title: "TV",
			BackgroundColor: strp(colorActivities),
			Grid:            Grid{Columns: 4, Rows: 2},
			Tiles: []Tile{
				audioTile("tv_nursery", "Nursery Rhymes"),
				audioTile("tv_lorax", "Lorax"),
				audioTile("tv_clifford", "Clifford"),
				audioTile("tv_netflix", "Netflix"),
				audioTile("tv_wordgirl", "Word Girl"),
				audioTile("tv_cat_hat", "Cat & Hat"),
				audioTile("tv_pbs", "PBS"),
				audioTile("tv_cook", "Cooking Show"),
			},
		},
		{
			ID: "places", ParentID: strp("home"), Path: "/p/places", Title: "Places",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 3, Rows: 3},
			Tiles: []Tile{
				linkTile("places_resturants", "Restaurants", "restaurants"),
				audioTile("places_bathroom", "Bathroom"),
				audioTile("places_bowling", "Bowling"),
				linkTile("places_shopping", "Shopping", "shopping"),
				audioTile("places_home", "Home"),
				audioTile("places_park", "Park"),
				audioTile("places_movies", "Movies"),
				audioTile("places_church", "Church"),
				audioTile("places_dave_n_busters", "Dave & Busters"),
			},
		},
		{
			ID: "shopping", ParentID: strp("places"), Path: "/p/shopping", Title: "Shopping",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 3, Rows: 1},
			Tiles: []Tile{
				audioTile("places_mall", "Mall"),
				audioTile("places_target", "Target"),
				audioTile("places_dollar_general", "Dollar General"),
			},
		},
		{
			ID: "I_Did", ParentID: strp("home"), Path: "/p/I_Did", Title: "I Did",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 2, Rows: 2},
			Tiles: []Tile{
				linkTile("i_did_i_felt", "I Felt ...", "feelings"),
				linkTile("i_did_i_ate", "I Ate ...", "hungry"),
				linkTile("i_did_i_went_to", "I went to ...", "places"),
				linkTile("i_did_i_taked_to", "I talked to ...", "people"),
			},
		},
		{
			ID: "i_need", ParentID: strp("home"), Path: "/p/i_need", Title: "I Need ...",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 2, Rows: 2},
			Tiles: []Tile{
				audioTile("i_need_bathroom", "Bathroom"),
				audioTile("i_need_help", "Help"),
				audioTile("i_need_sleep", "Sleep"),
				audioTile("i_need_nedicine", "Medicine"),
			},
		},
		{
			ID: "feelings", ParentID: strp("home"), Path: "/p/feelings", Title: "Feelings",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 4, Rows: 2},
			Tiles: []Tile{
				linkTile("feelings_sick", "Sick", "sick"),
				audioTile("feelings_hot", "Hot"),
				linkTile("feelings_hurt", "Hurt", "hurt"),
				audioTile("feelings_cold", "Cold"),
				audioTile("feelings_angry", "Angry"),
				audioTile("feelings_happy", "Happy"),
				audioTile("feelings_bored", "Bored"),
				audioTile("feelings_sad", "Sad"),
			},
		},
		{
			ID: "sick", ParentID: strp("feelings"), Path: "/p/sick", Title: "Sick",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 2, Rows: 2},
			Tiles: []Tile{
				audioTile("feelings_sore_throat", "Sore Throat"),
				audioTile("feelings_cramps", "Cramps"),
				audioTile("feelings_headache", "Headache"),
				audioTile("feelings_stoamch_ache", "Stomach Ache"),
			},
		},
		{
			ID: "hurt", ParentID: strp("feelings"), Path: "/p/hurt", Title: "Hurt",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 2, Rows: 2},
			Tiles: []Tile{
				audioTile("feelings_head", "Head"),
				audioTile("feelings_stomach", "Stomach"),
				audioTile("feelings_legs", "Legs"),
				audioTile("feelings_arms", "Arms"),
			},
		},
		{
			ID: "chat", ParentID: strp("home"), Path: "/p/chat", Title: "Chat",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 4, Rows: 2},
			Tiles: []Tile{
				audioTile("chat_maybe", "Maybe"),
				audioTile("chat_done", "Done"),
				audioTile("chat_later", "Later"),
				audioTile("chat_more", "More"),
				audioTile("chat_idk", "I Don't Know"),
				audioTile("chat_stop", "Stop"),
				audioTile("chat_ty", "Thank You"),
				audioTile("chat_please", "Please"),
			},
		},
		{
			ID: "people", ParentID: strp("home"), Path: "/p/people", Title: "People",
			BackgroundColor: strp(colorHome),
			Grid:            Grid{Columns: 2, Rows: 4},
			Tiles: []Tile{
				audioTile("people_mom", "Mom"),
				audioTile("people_doctor", "Doctor"),
				audioTile("people_teacher", "Teacher"),
				audioTile("people_dog", "Dog"),
				audioTile("people_cat", "Cat"),
				audioTile("people_he", "He"),
				audioTile("people_her", "Her"),
				audioTile("people_chizenum", "Chizenum"),
			},
		},
	}
}

func audioTile(id, label string) Tile {
	return Tile{ID: id, Kind: TileKindAudio, Label: label, ColumnSpan: 1}
}

func linkTile(id, label, target string) Tile {
	return Tile{ID: id, Kind: TileKindLink, Label: label, ColumnSpan: 1, LinkTargetID: strp(target)}
}

func spanTile(t Tile, span int) Tile {
	t.ColumnSpan = span
	return t
}

func strp(s string) *string {
	return &s
}
