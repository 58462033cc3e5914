package mongo

import (
	"regexp"

	"github.com/fwojciec/nicobar"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ArticleQuery returns the filter and options for an article search,
// newest first.
func ArticleQuery(filter nicobar.ArticleFilter) (bson.M, *options.FindOptions) {
	query := bson.M{}
	if filter.Tag != nil {
		query["tags"] = exactFold(*filter.Tag)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	paginate(opts, filter.Limit, filter.Offset)
	return query, opts
}

// GameCardQuery returns the filter and options for a card search, ordered by ID.
// Colors are stored joined by "/" and match when any listed color is one of them.
func GameCardQuery(filter nicobar.GameCardFilter) (bson.M, *options.FindOptions) {
	query := bson.M{}

	if filter.Keyword != nil {
		kw := containsFold(*filter.Keyword)
		query["$or"] = bson.A{bson.M{"name": kw}, bson.M{"text": kw}}
	}
	if filter.Feature != nil {
		query["feature"] = containsFold(*filter.Feature)
	}
	setIn(query, "type", filter.Types, exactFold)
	setIn(query, "set", filter.Sets, exactFold)
	setIn(query, "rarity", filter.Rarities, exactFold)
	setIn(query, "attributes", filter.Attributes, exactFold)
	setIn(query, "color", filter.Colors, func(c string) primitive.Regex {
		return primitive.Regex{Pattern: "(^|/)" + regexp.QuoteMeta(c) + "(/|$)", Options: "i"}
	})

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	paginate(opts, filter.Limit, filter.Offset)
	return query, opts
}

func setIn(query bson.M, field string, values []string, match func(string) primitive.Regex) {
	if len(values) == 0 {
		return
	}
	in := make(bson.A, len(values))
	for i, v := range values {
		in[i] = match(v)
	}
	query[field] = bson.M{"$in": in}
}

func exactFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func paginate(opts *options.FindOptions, limit, offset int) {
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
}
