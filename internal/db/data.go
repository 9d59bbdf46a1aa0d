package db

import (
	"time"

	"ncnews/internal/models"
)

func ts(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TestData is the fixture the seed command and the integration tests load.
// Article 1 has 100 votes and 11 comments; topic "paper" has no articles.
func TestData() Dataset {
	return Dataset{
		Topics: []models.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []models.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []models.Article{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts(1594329060000), Votes: 100, ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago I decided to buy a laptop.", CreatedAt: ts(1602828180000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts(1604394720000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: ts(1588731240000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts(1596464040000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts(1602986400000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts(1578406080000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue.", CreatedAt: ts(1587089280000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts(1591438200000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts(1589433300000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: ts(1579126860000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts(1602419040000), ArticleImgURL: models.DefaultArticleImgURL},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: ts(1602419100000), ArticleImgURL: models.DefaultArticleImgURL},
		},
		Comments: []models.Comment{
			{ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: ts(1586179020000)},
			{ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: ts(1604113380000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie.", Votes: 100, CreatedAt: ts(1583025180000)},
			{ArticleID: 1, Author: "icellusedkars", Body: " I carry a log — yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: ts(1582459260000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: ts(1604437200000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", Votes: 0, CreatedAt: ts(1586642520000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", Votes: 0, CreatedAt: ts(1589577540000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", Votes: 0, CreatedAt: ts(1586899140000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", Votes: 0, CreatedAt: ts(1577848080000)},
			{ArticleID: 3, Author: "icellusedkars", Body: "git push origin master", Votes: 0, CreatedAt: ts(1592641440000)},
			{ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: ts(1600560600000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", Votes: 0, CreatedAt: ts(1583133000000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles", Votes: 0, CreatedAt: ts(1592220300000)},
			{ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us.", Votes: 16, CreatedAt: ts(1591682400000)},
			{ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: ts(1606176480000)},
			{ArticleID: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: ts(1602433380000)},
			{ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: ts(1584205320000)},
			{ArticleID: 1, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 16, CreatedAt: ts(1595294400000)},
		},
	}
}
