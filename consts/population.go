package consts

import (
	"fmt"
)

// CountryPopulation maps a CSSE Country/Region name to its population
// (UN World Population Prospects, 2020 estimate).
var CountryPopulation map[string]float64

func init() {
	CountryPopulation = make(map[string]float64)

	CountryPopulation["Afghanistan"] = 38928346
	CountryPopulation["Albania"] = 2877797
	CountryPopulation["Algeria"] = 43851044
	CountryPopulation["Andorra"] = 77265
	CountryPopulation["Angola"] = 32866272
	CountryPopulation["Argentina"] = 45195774
	CountryPopulation["Armenia"] = 2963243
	CountryPopulation["Australia"] = 25499884
	CountryPopulation["Austria"] = 9006398
	CountryPopulation["Azerbaijan"] = 10139177
	CountryPopulation["Bahamas"] = 393244
	CountryPopulation["Bahrain"] = 1701575
	CountryPopulation["Bangladesh"] = 164689383
	CountryPopulation["Barbados"] = 287375
	CountryPopulation["Belarus"] = 9449323
	CountryPopulation["Belgium"] = 11589623
	CountryPopulation["Belize"] = 397628
	CountryPopulation["Benin"] = 12123200
	CountryPopulation["Bhutan"] = 771608
	CountryPopulation["Bolivia"] = 11673021
	CountryPopulation["Bosnia and Herzegovina"] = 3280819
	CountryPopulation["Botswana"] = 2351627
	CountryPopulation["Brazil"] = 212559417
	CountryPopulation["Brunei"] = 437479
	CountryPopulation["Bulgaria"] = 6948445
	CountryPopulation["Burkina Faso"] = 20903273
	CountryPopulation["Burma"] = 54409800
	CountryPopulation["Burundi"] = 11890784
	CountryPopulation["Cabo Verde"] = 555987
	CountryPopulation["Cambodia"] = 16718965
	CountryPopulation["Cameroon"] = 26545863
	CountryPopulation["Canada"] = 37742154
	CountryPopulation["Central African Republic"] = 4829767
	CountryPopulation["Chad"] = 16425864
	CountryPopulation["Chile"] = 19116201
	CountryPopulation["China"] = 1439323776
	CountryPopulation["Colombia"] = 50882891
	CountryPopulation["Congo (Brazzaville)"] = 5518087
	CountryPopulation["Congo (Kinshasa)"] = 89561403
	CountryPopulation["Costa Rica"] = 5094118
	CountryPopulation["Cote d'Ivoire"] = 26378274
	CountryPopulation["Croatia"] = 4105267
	CountryPopulation["Cuba"] = 11326616
	CountryPopulation["Cyprus"] = 1207359
	CountryPopulation["Czechia"] = 10708981
	CountryPopulation["Denmark"] = 5792202
	CountryPopulation["Djibouti"] = 988000
	CountryPopulation["Dominican Republic"] = 10847910
	CountryPopulation["Ecuador"] = 17643054
	CountryPopulation["Egypt"] = 102334404
	CountryPopulation["El Salvador"] = 6486205
	CountryPopulation["Equatorial Guinea"] = 1402985
	CountryPopulation["Eritrea"] = 3546421
	CountryPopulation["Estonia"] = 1326535
	CountryPopulation["Eswatini"] = 1160164
	CountryPopulation["Ethiopia"] = 114963588
	CountryPopulation["Fiji"] = 896445
	CountryPopulation["Finland"] = 5540720
	CountryPopulation["France"] = 65273511
	CountryPopulation["Gabon"] = 2225734
	CountryPopulation["Gambia"] = 2416668
	CountryPopulation["Georgia"] = 3989167
	CountryPopulation["Germany"] = 83783942
	CountryPopulation["Ghana"] = 31072940
	CountryPopulation["Greece"] = 10423054
	CountryPopulation["Guatemala"] = 17915568
	CountryPopulation["Guinea"] = 13132795
	CountryPopulation["Guyana"] = 786552
	CountryPopulation["Haiti"] = 11402528
	CountryPopulation["Honduras"] = 9904607
	CountryPopulation["Hungary"] = 9660351
	CountryPopulation["Iceland"] = 341243
	CountryPopulation["India"] = 1380004385
	CountryPopulation["Indonesia"] = 273523615
	CountryPopulation["Iran"] = 83992949
	CountryPopulation["Iraq"] = 40222493
	CountryPopulation["Ireland"] = 4937786
	CountryPopulation["Israel"] = 8655535
	CountryPopulation["Italy"] = 60461826
	CountryPopulation["Jamaica"] = 2961167
	CountryPopulation["Japan"] = 126476461
	CountryPopulation["Jordan"] = 10203134
	CountryPopulation["Kazakhstan"] = 18776707
	CountryPopulation["Kenya"] = 53771296
	CountryPopulation["Korea, South"] = 51269185
	CountryPopulation["Kosovo"] = 1810366
	CountryPopulation["Kuwait"] = 4270571
	CountryPopulation["Kyrgyzstan"] = 6524195
	CountryPopulation["Laos"] = 7275560
	CountryPopulation["Latvia"] = 1886198
	CountryPopulation["Lebanon"] = 6825445
	CountryPopulation["Liberia"] = 5057681
	CountryPopulation["Libya"] = 6871292
	CountryPopulation["Liechtenstein"] = 38128
	CountryPopulation["Lithuania"] = 2722289
	CountryPopulation["Luxembourg"] = 625978
	CountryPopulation["Madagascar"] = 27691018
	CountryPopulation["Malawi"] = 19129952
	CountryPopulation["Malaysia"] = 32365999
	CountryPopulation["Maldives"] = 540544
	CountryPopulation["Mali"] = 20250833
	CountryPopulation["Malta"] = 441543
	CountryPopulation["Mauritania"] = 4649658
	CountryPopulation["Mauritius"] = 1271768
	CountryPopulation["Mexico"] = 128932753
	CountryPopulation["Moldova"] = 4033963
	CountryPopulation["Monaco"] = 39242
	CountryPopulation["Mongolia"] = 3278290
	CountryPopulation["Montenegro"] = 628066
	CountryPopulation["Morocco"] = 36910560
	CountryPopulation["Mozambique"] = 31255435
	CountryPopulation["Namibia"] = 2540905
	CountryPopulation["Nepal"] = 29136808
	CountryPopulation["Netherlands"] = 17134872
	CountryPopulation["New Zealand"] = 4822233
	CountryPopulation["Nicaragua"] = 6624554
	CountryPopulation["Niger"] = 24206644
	CountryPopulation["Nigeria"] = 206139589
	CountryPopulation["North Macedonia"] = 2083374
	CountryPopulation["Norway"] = 5421241
	CountryPopulation["Oman"] = 5106626
	CountryPopulation["Pakistan"] = 220892340
	CountryPopulation["Panama"] = 4314767
	CountryPopulation["Papua New Guinea"] = 8947024
	CountryPopulation["Paraguay"] = 7132538
	CountryPopulation["Peru"] = 32971854
	CountryPopulation["Philippines"] = 109581078
	CountryPopulation["Poland"] = 37846611
	CountryPopulation["Portugal"] = 10196709
	CountryPopulation["Qatar"] = 2881053
	CountryPopulation["Romania"] = 19237691
	CountryPopulation["Russia"] = 145934462
	CountryPopulation["Rwanda"] = 12952218
	CountryPopulation["San Marino"] = 33931
	CountryPopulation["Saudi Arabia"] = 34813871
	CountryPopulation["Senegal"] = 16743927
	CountryPopulation["Serbia"] = 8737371
	CountryPopulation["Sierra Leone"] = 7976983
	CountryPopulation["Singapore"] = 5850342
	CountryPopulation["Slovakia"] = 5459642
	CountryPopulation["Slovenia"] = 2078938
	CountryPopulation["Somalia"] = 15893222
	CountryPopulation["South Africa"] = 59308690
	CountryPopulation["South Sudan"] = 11193725
	CountryPopulation["Spain"] = 46754778
	CountryPopulation["Sri Lanka"] = 21413249
	CountryPopulation["Sudan"] = 43849260
	CountryPopulation["Suriname"] = 586632
	CountryPopulation["Sweden"] = 10099265
	CountryPopulation["Switzerland"] = 8654622
	CountryPopulation["Syria"] = 17500658
	CountryPopulation["Taiwan*"] = 23816775
	CountryPopulation["Tajikistan"] = 9537645
	CountryPopulation["Tanzania"] = 59734218
	CountryPopulation["Thailand"] = 69799978
	CountryPopulation["Togo"] = 8278724
	CountryPopulation["Trinidad and Tobago"] = 1399488
	CountryPopulation["Tunisia"] = 11818619
	CountryPopulation["Turkey"] = 84339067
	CountryPopulation["US"] = 331002651
	CountryPopulation["Uganda"] = 45741007
	CountryPopulation["Ukraine"] = 43733762
	CountryPopulation["United Arab Emirates"] = 9890402
	CountryPopulation["United Kingdom"] = 67886011
	CountryPopulation["Uruguay"] = 3473730
	CountryPopulation["Uzbekistan"] = 33469203
	CountryPopulation["Venezuela"] = 28435940
	CountryPopulation["Vietnam"] = 97338579
	CountryPopulation["West Bank and Gaza"] = 5101414
	CountryPopulation["Yemen"] = 29825964
	CountryPopulation["Zambia"] = 18383955
	CountryPopulation["Zimbabwe"] = 14862924
}

// Population - look up the population of a country
func Population(country string) (float64, error) {
	p, ok := CountryPopulation[country]
	if !ok || p <= 0 {
		return 0, fmt.Errorf("%s not exist", country)
	}
	return p, nil
}
