package reference

import "github.com/shopspring/decimal"

// d keeps the table literals below readable.
func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// NationalAverageWageIndex returns the SSA national average wage index
// series as published at https://www.ssa.gov/oact/cola/AWI.html.
func NationalAverageWageIndex() WageIndexSeries {
	return WageIndexSeries{
		1951: d(2799.16), 1952: d(2973.32), 1953: d(3139.44), 1954: d(3155.64), 1955: d(3301.44),
		1956: d(3532.36), 1957: d(3641.72), 1958: d(3673.80), 1959: d(3855.80), 1960: d(4007.12),
		1961: d(4086.76), 1962: d(4291.40), 1963: d(4396.64), 1964: d(4576.32), 1965: d(4658.72),
		1966: d(4938.36), 1967: d(5213.44), 1968: d(5571.76), 1969: d(5893.76), 1970: d(6186.24),
		1971: d(6497.08), 1972: d(7133.80), 1973: d(7580.16), 1974: d(8030.76), 1975: d(8630.92),
		1976: d(9226.48), 1977: d(9779.44), 1978: d(10556.03), 1979: d(11479.46), 1980: d(12513.46),
		1981: d(13773.10), 1982: d(14531.34), 1983: d(15239.24), 1984: d(16135.07), 1985: d(16822.51),
		1986: d(17321.82), 1987: d(18426.51), 1988: d(19334.04), 1989: d(20099.55), 1990: d(21027.98),
		1991: d(21811.60), 1992: d(22935.42), 1993: d(23132.67), 1994: d(23753.53), 1995: d(24705.66),
		1996: d(25913.90), 1997: d(27426.00), 1998: d(28861.44), 1999: d(30469.84), 2000: d(32154.82),
		2001: d(32921.92), 2002: d(33252.09), 2003: d(34064.95), 2004: d(35648.55), 2005: d(36952.94),
		2006: d(38651.41), 2007: d(40405.48), 2008: d(41334.97), 2009: d(40711.61), 2010: d(41673.83),
		2011: d(42979.61), 2012: d(44321.67), 2013: d(44888.16), 2014: d(46481.52), 2015: d(48098.63),
		2016: d(48642.15), 2017: d(50321.89), 2018: d(52145.80), 2019: d(54099.99), 2020: d(55628.60),
	}
}

// OASDITaxRateSchedule returns the combined employee-plus-employer OASDI
// payroll tax rate history (percent of covered earnings), keyed by the
// year each change took effect. Medicare (HI) is excluded.
// Source: https://www.ssa.gov/oact/progdata/taxRates.html
func OASDITaxRateSchedule() TaxRateSchedule {
	return TaxRateSchedule{
		1937: d(2.0),
		1950: d(3.0),
		1954: d(4.0),
		1957: d(4.5),
		1959: d(5.0),
		1960: d(6.0),
		1962: d(6.25),
		1963: d(7.25),
		1966: d(7.7),
		1967: d(7.8),
		1969: d(8.4),
		1971: d(9.2),
		1973: d(9.7),
		1974: d(9.9),
		1978: d(10.1),
		1979: d(10.16),
		1981: d(10.7),
		1982: d(10.8),
		1984: d(11.4),
		1988: d(12.12),
		1990: d(12.4),
	}
}

// SP500AnnualReturns returns the S&P 500 annual total return series
// (percent, dividends reinvested) covering the same span as the wage
// index data.
func SP500AnnualReturns() EquityReturnSeries {
	return EquityReturnSeries{
		1951: d(24.02), 1952: d(18.37), 1953: d(-0.99), 1954: d(52.62), 1955: d(31.56),
		1956: d(6.56), 1957: d(-10.78), 1958: d(43.36), 1959: d(11.96), 1960: d(0.47),
		1961: d(26.89), 1962: d(-8.73), 1963: d(22.80), 1964: d(16.48), 1965: d(12.45),
		1966: d(-10.06), 1967: d(23.98), 1968: d(11.06), 1969: d(-8.50), 1970: d(4.01),
		1971: d(14.31), 1972: d(18.98), 1973: d(-14.66), 1974: d(-26.47), 1975: d(37.20),
		1976: d(23.84), 1977: d(-7.18), 1978: d(6.56), 1979: d(18.44), 1980: d(32.42),
		1981: d(-4.91), 1982: d(21.55), 1983: d(22.56), 1984: d(6.27), 1985: d(31.73),
		1986: d(18.67), 1987: d(5.25), 1988: d(16.61), 1989: d(31.69), 1990: d(-3.10),
		1991: d(30.47), 1992: d(7.62), 1993: d(10.08), 1994: d(1.32), 1995: d(37.58),
		1996: d(22.96), 1997: d(33.36), 1998: d(28.58), 1999: d(21.04), 2000: d(-9.10),
		2001: d(-11.89), 2002: d(-22.10), 2003: d(28.68), 2004: d(10.88), 2005: d(4.91),
		2006: d(15.79), 2007: d(5.49), 2008: d(-37.00), 2009: d(26.46), 2010: d(15.06),
		2011: d(2.11), 2012: d(16.00), 2013: d(32.39), 2014: d(13.69), 2015: d(1.38),
		2016: d(11.96), 2017: d(21.83), 2018: d(-4.38), 2019: d(31.49), 2020: d(18.40),
	}
}
