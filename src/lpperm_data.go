package dat

// lpPerm is generated data; see DESIGN.md for how it was reconstructed.

var lpPerm = [5760]uint16{
	0, 1920, 3840, 1, 1921, 3841, 2, 1922, 3842, 3, 1923, 3843, 4, 1924, 3844, 5,
	1925, 3845, 6, 1926, 3846, 7, 1927, 3847, 8, 1928, 3848, 9, 1929, 3849, 10, 1930,
	3850, 11, 1931, 3851, 12, 1932, 3852, 13, 1933, 3853, 14, 1934, 3854, 15, 1935, 3855,
	16, 1936, 3856, 17, 1937, 3857, 18, 1938, 3858, 19, 1939, 3859, 20, 1940, 3860, 21,
	1941, 3861, 22, 1942, 3862, 23, 1943, 3863, 24, 1944, 3864, 25, 1945, 3865, 26, 1946,
	3866, 27, 1947, 3867, 28, 1948, 3868, 29, 1949, 3869, 30, 1950, 3870, 31, 1951, 3871,
	32, 1952, 3872, 33, 1953, 3873, 34, 1954, 3874, 35, 1955, 3875, 36, 1956, 3876, 37,
	1957, 3877, 38, 1958, 3878, 39, 1959, 3879, 40, 1960, 3880, 41, 1961, 3881, 42, 1962,
	3882, 43, 1963, 3883, 44, 1964, 3884, 45, 1965, 3885, 46, 1966, 3886, 47, 1967, 3887,
	48, 1968, 3888, 49, 1969, 3889, 50, 1970, 3890, 51, 1971, 3891, 52, 1972, 3892, 53,
	1973, 3893, 54, 1974, 3894, 55, 1975, 3895, 56, 1976, 3896, 57, 1977, 3897, 58, 1978,
	3898, 59, 1979, 3899, 60, 1980, 3900, 61, 1981, 3901, 62, 1982, 3902, 63, 1983, 3903,
	64, 1984, 3904, 65, 1985, 3905, 66, 1986, 3906, 67, 1987, 3907, 68, 1988, 3908, 69,
	1989, 3909, 70, 1990, 3910, 71, 1991, 3911, 72, 1992, 3912, 73, 1993, 3913, 74, 1994,
	3914, 75, 1995, 3915, 76, 1996, 3916, 77, 1997, 3917, 78, 1998, 3918, 79, 1999, 3919,
	80, 2000, 3920, 81, 2001, 3921, 82, 2002, 3922, 83, 2003, 3923, 84, 2004, 3924, 85,
	2005, 3925, 86, 2006, 3926, 87, 2007, 3927, 88, 2008, 3928, 89, 2009, 3929, 90, 2010,
	3930, 91, 2011, 3931, 92, 2012, 3932, 93, 2013, 3933, 94, 2014, 3934, 95, 2015, 3935,
	96, 2016, 3936, 97, 2017, 3937, 98, 2018, 3938, 99, 2019, 3939, 100, 2020, 3940, 101,
	2021, 3941, 102, 2022, 3942, 103, 2023, 3943, 104, 2024, 3944, 105, 2025, 3945, 106, 2026,
	3946, 107, 2027, 3947, 108, 2028, 3948, 109, 2029, 3949, 110, 2030, 3950, 111, 2031, 3951,
	112, 2032, 3952, 113, 2033, 3953, 114, 2034, 3954, 115, 2035, 3955, 116, 2036, 3956, 117,
	2037, 3957, 118, 2038, 3958, 119, 2039, 3959, 120, 2040, 3960, 121, 2041, 3961, 122, 2042,
	3962, 123, 2043, 3963, 124, 2044, 3964, 125, 2045, 3965, 126, 2046, 3966, 127, 2047, 3967,
	128, 2048, 3968, 129, 2049, 3969, 130, 2050, 3970, 131, 2051, 3971, 132, 2052, 3972, 133,
	2053, 3973, 134, 2054, 3974, 135, 2055, 3975, 136, 2056, 3976, 137, 2057, 3977, 138, 2058,
	3978, 139, 2059, 3979, 140, 2060, 3980, 141, 2061, 3981, 142, 2062, 3982, 143, 2063, 3983,
	144, 2064, 3984, 145, 2065, 3985, 146, 2066, 3986, 147, 2067, 3987, 148, 2068, 3988, 149,
	2069, 3989, 150, 2070, 3990, 151, 2071, 3991, 152, 2072, 3992, 153, 2073, 3993, 154, 2074,
	3994, 155, 2075, 3995, 156, 2076, 3996, 157, 2077, 3997, 158, 2078, 3998, 159, 2079, 3999,
	160, 2080, 4000, 161, 2081, 4001, 162, 2082, 4002, 163, 2083, 4003, 164, 2084, 4004, 165,
	2085, 4005, 166, 2086, 4006, 167, 2087, 4007, 168, 2088, 4008, 169, 2089, 4009, 170, 2090,
	4010, 171, 2091, 4011, 172, 2092, 4012, 173, 2093, 4013, 174, 2094, 4014, 175, 2095, 4015,
	176, 2096, 4016, 177, 2097, 4017, 178, 2098, 4018, 179, 2099, 4019, 180, 2100, 4020, 181,
	2101, 4021, 182, 2102, 4022, 183, 2103, 4023, 184, 2104, 4024, 185, 2105, 4025, 186, 2106,
	4026, 187, 2107, 4027, 188, 2108, 4028, 189, 2109, 4029, 190, 2110, 4030, 191, 2111, 4031,
	192, 2112, 4032, 193, 2113, 4033, 194, 2114, 4034, 195, 2115, 4035, 196, 2116, 4036, 197,
	2117, 4037, 198, 2118, 4038, 199, 2119, 4039, 200, 2120, 4040, 201, 2121, 4041, 202, 2122,
	4042, 203, 2123, 4043, 204, 2124, 4044, 205, 2125, 4045, 206, 2126, 4046, 207, 2127, 4047,
	208, 2128, 4048, 209, 2129, 4049, 210, 2130, 4050, 211, 2131, 4051, 212, 2132, 4052, 213,
	2133, 4053, 214, 2134, 4054, 215, 2135, 4055, 216, 2136, 4056, 217, 2137, 4057, 218, 2138,
	4058, 219, 2139, 4059, 220, 2140, 4060, 221, 2141, 4061, 222, 2142, 4062, 223, 2143, 4063,
	224, 2144, 4064, 225, 2145, 4065, 226, 2146, 4066, 227, 2147, 4067, 228, 2148, 4068, 229,
	2149, 4069, 230, 2150, 4070, 231, 2151, 4071, 232, 2152, 4072, 233, 2153, 4073, 234, 2154,
	4074, 235, 2155, 4075, 236, 2156, 4076, 237, 2157, 4077, 238, 2158, 4078, 239, 2159, 4079,
	240, 2160, 4080, 241, 2161, 4081, 242, 2162, 4082, 243, 2163, 4083, 244, 2164, 4084, 245,
	2165, 4085, 246, 2166, 4086, 247, 2167, 4087, 248, 2168, 4088, 249, 2169, 4089, 250, 2170,
	4090, 251, 2171, 4091, 252, 2172, 4092, 253, 2173, 4093, 254, 2174, 4094, 255, 2175, 4095,
	256, 2176, 4096, 257, 2177, 4097, 258, 2178, 4098, 259, 2179, 4099, 260, 2180, 4100, 261,
	2181, 4101, 262, 2182, 4102, 263, 2183, 4103, 264, 2184, 4104, 265, 2185, 4105, 266, 2186,
	4106, 267, 2187, 4107, 268, 2188, 4108, 269, 2189, 4109, 270, 2190, 4110, 271, 2191, 4111,
	272, 2192, 4112, 273, 2193, 4113, 274, 2194, 4114, 275, 2195, 4115, 276, 2196, 4116, 277,
	2197, 4117, 278, 2198, 4118, 279, 2199, 4119, 280, 2200, 4120, 281, 2201, 4121, 282, 2202,
	4122, 283, 2203, 4123, 284, 2204, 4124, 285, 2205, 4125, 286, 2206, 4126, 287, 2207, 4127,
	288, 2208, 4128, 289, 2209, 4129, 290, 2210, 4130, 291, 2211, 4131, 292, 2212, 4132, 293,
	2213, 4133, 294, 2214, 4134, 295, 2215, 4135, 296, 2216, 4136, 297, 2217, 4137, 298, 2218,
	4138, 299, 2219, 4139, 300, 2220, 4140, 301, 2221, 4141, 302, 2222, 4142, 303, 2223, 4143,
	304, 2224, 4144, 305, 2225, 4145, 306, 2226, 4146, 307, 2227, 4147, 308, 2228, 4148, 309,
	2229, 4149, 310, 2230, 4150, 311, 2231, 4151, 312, 2232, 4152, 313, 2233, 4153, 314, 2234,
	4154, 315, 2235, 4155, 316, 2236, 4156, 317, 2237, 4157, 318, 2238, 4158, 319, 2239, 4159,
	320, 2240, 4160, 321, 2241, 4161, 322, 2242, 4162, 323, 2243, 4163, 324, 2244, 4164, 325,
	2245, 4165, 326, 2246, 4166, 327, 2247, 4167, 328, 2248, 4168, 329, 2249, 4169, 330, 2250,
	4170, 331, 2251, 4171, 332, 2252, 4172, 333, 2253, 4173, 334, 2254, 4174, 335, 2255, 4175,
	336, 2256, 4176, 337, 2257, 4177, 338, 2258, 4178, 339, 2259, 4179, 340, 2260, 4180, 341,
	2261, 4181, 342, 2262, 4182, 343, 2263, 4183, 344, 2264, 4184, 345, 2265, 4185, 346, 2266,
	4186, 347, 2267, 4187, 348, 2268, 4188, 349, 2269, 4189, 350, 2270, 4190, 351, 2271, 4191,
	352, 2272, 4192, 353, 2273, 4193, 354, 2274, 4194, 355, 2275, 4195, 356, 2276, 4196, 357,
	2277, 4197, 358, 2278, 4198, 359, 2279, 4199, 360, 2280, 4200, 361, 2281, 4201, 362, 2282,
	4202, 363, 2283, 4203, 364, 2284, 4204, 365, 2285, 4205, 366, 2286, 4206, 367, 2287, 4207,
	368, 2288, 4208, 369, 2289, 4209, 370, 2290, 4210, 371, 2291, 4211, 372, 2292, 4212, 373,
	2293, 4213, 374, 2294, 4214, 375, 2295, 4215, 376, 2296, 4216, 377, 2297, 4217, 378, 2298,
	4218, 379, 2299, 4219, 380, 2300, 4220, 381, 2301, 4221, 382, 2302, 4222, 383, 2303, 4223,
	384, 2304, 4224, 385, 2305, 4225, 386, 2306, 4226, 387, 2307, 4227, 388, 2308, 4228, 389,
	2309, 4229, 390, 2310, 4230, 391, 2311, 4231, 392, 2312, 4232, 393, 2313, 4233, 394, 2314,
	4234, 395, 2315, 4235, 396, 2316, 4236, 397, 2317, 4237, 398, 2318, 4238, 399, 2319, 4239,
	400, 2320, 4240, 401, 2321, 4241, 402, 2322, 4242, 403, 2323, 4243, 404, 2324, 4244, 405,
	2325, 4245, 406, 2326, 4246, 407, 2327, 4247, 408, 2328, 4248, 409, 2329, 4249, 410, 2330,
	4250, 411, 2331, 4251, 412, 2332, 4252, 413, 2333, 4253, 414, 2334, 4254, 415, 2335, 4255,
	416, 2336, 4256, 417, 2337, 4257, 418, 2338, 4258, 419, 2339, 4259, 420, 2340, 4260, 421,
	2341, 4261, 422, 2342, 4262, 423, 2343, 4263, 424, 2344, 4264, 425, 2345, 4265, 426, 2346,
	4266, 427, 2347, 4267, 428, 2348, 4268, 429, 2349, 4269, 430, 2350, 4270, 431, 2351, 4271,
	432, 2352, 4272, 433, 2353, 4273, 434, 2354, 4274, 435, 2355, 4275, 436, 2356, 4276, 437,
	2357, 4277, 438, 2358, 4278, 439, 2359, 4279, 440, 2360, 4280, 441, 2361, 4281, 442, 2362,
	4282, 443, 2363, 4283, 444, 2364, 4284, 445, 2365, 4285, 446, 2366, 4286, 447, 2367, 4287,
	448, 2368, 4288, 449, 2369, 4289, 450, 2370, 4290, 451, 2371, 4291, 452, 2372, 4292, 453,
	2373, 4293, 454, 2374, 4294, 455, 2375, 4295, 456, 2376, 4296, 457, 2377, 4297, 458, 2378,
	4298, 459, 2379, 4299, 460, 2380, 4300, 461, 2381, 4301, 462, 2382, 4302, 463, 2383, 4303,
	464, 2384, 4304, 465, 2385, 4305, 466, 2386, 4306, 467, 2387, 4307, 468, 2388, 4308, 469,
	2389, 4309, 470, 2390, 4310, 471, 2391, 4311, 472, 2392, 4312, 473, 2393, 4313, 474, 2394,
	4314, 475, 2395, 4315, 476, 2396, 4316, 477, 2397, 4317, 478, 2398, 4318, 479, 2399, 4319,
	480, 2400, 4320, 481, 2401, 4321, 482, 2402, 4322, 483, 2403, 4323, 484, 2404, 4324, 485,
	2405, 4325, 486, 2406, 4326, 487, 2407, 4327, 488, 2408, 4328, 489, 2409, 4329, 490, 2410,
	4330, 491, 2411, 4331, 492, 2412, 4332, 493, 2413, 4333, 494, 2414, 4334, 495, 2415, 4335,
	496, 2416, 4336, 497, 2417, 4337, 498, 2418, 4338, 499, 2419, 4339, 500, 2420, 4340, 501,
	2421, 4341, 502, 2422, 4342, 503, 2423, 4343, 504, 2424, 4344, 505, 2425, 4345, 506, 2426,
	4346, 507, 2427, 4347, 508, 2428, 4348, 509, 2429, 4349, 510, 2430, 4350, 511, 2431, 4351,
	512, 2432, 4352, 513, 2433, 4353, 514, 2434, 4354, 515, 2435, 4355, 516, 2436, 4356, 517,
	2437, 4357, 518, 2438, 4358, 519, 2439, 4359, 520, 2440, 4360, 521, 2441, 4361, 522, 2442,
	4362, 523, 2443, 4363, 524, 2444, 4364, 525, 2445, 4365, 526, 2446, 4366, 527, 2447, 4367,
	528, 2448, 4368, 529, 2449, 4369, 530, 2450, 4370, 531, 2451, 4371, 532, 2452, 4372, 533,
	2453, 4373, 534, 2454, 4374, 535, 2455, 4375, 536, 2456, 4376, 537, 2457, 4377, 538, 2458,
	4378, 539, 2459, 4379, 540, 2460, 4380, 541, 2461, 4381, 542, 2462, 4382, 543, 2463, 4383,
	544, 2464, 4384, 545, 2465, 4385, 546, 2466, 4386, 547, 2467, 4387, 548, 2468, 4388, 549,
	2469, 4389, 550, 2470, 4390, 551, 2471, 4391, 552, 2472, 4392, 553, 2473, 4393, 554, 2474,
	4394, 555, 2475, 4395, 556, 2476, 4396, 557, 2477, 4397, 558, 2478, 4398, 559, 2479, 4399,
	560, 2480, 4400, 561, 2481, 4401, 562, 2482, 4402, 563, 2483, 4403, 564, 2484, 4404, 565,
	2485, 4405, 566, 2486, 4406, 567, 2487, 4407, 568, 2488, 4408, 569, 2489, 4409, 570, 2490,
	4410, 571, 2491, 4411, 572, 2492, 4412, 573, 2493, 4413, 574, 2494, 4414, 575, 2495, 4415,
	576, 2496, 4416, 577, 2497, 4417, 578, 2498, 4418, 579, 2499, 4419, 580, 2500, 4420, 581,
	2501, 4421, 582, 2502, 4422, 583, 2503, 4423, 584, 2504, 4424, 585, 2505, 4425, 586, 2506,
	4426, 587, 2507, 4427, 588, 2508, 4428, 589, 2509, 4429, 590, 2510, 4430, 591, 2511, 4431,
	592, 2512, 4432, 593, 2513, 4433, 594, 2514, 4434, 595, 2515, 4435, 596, 2516, 4436, 597,
	2517, 4437, 598, 2518, 4438, 599, 2519, 4439, 600, 2520, 4440, 601, 2521, 4441, 602, 2522,
	4442, 603, 2523, 4443, 604, 2524, 4444, 605, 2525, 4445, 606, 2526, 4446, 607, 2527, 4447,
	608, 2528, 4448, 609, 2529, 4449, 610, 2530, 4450, 611, 2531, 4451, 612, 2532, 4452, 613,
	2533, 4453, 614, 2534, 4454, 615, 2535, 4455, 616, 2536, 4456, 617, 2537, 4457, 618, 2538,
	4458, 619, 2539, 4459, 620, 2540, 4460, 621, 2541, 4461, 622, 2542, 4462, 623, 2543, 4463,
	624, 2544, 4464, 625, 2545, 4465, 626, 2546, 4466, 627, 2547, 4467, 628, 2548, 4468, 629,
	2549, 4469, 630, 2550, 4470, 631, 2551, 4471, 632, 2552, 4472, 633, 2553, 4473, 634, 2554,
	4474, 635, 2555, 4475, 636, 2556, 4476, 637, 2557, 4477, 638, 2558, 4478, 639, 2559, 4479,
	640, 2560, 4480, 641, 2561, 4481, 642, 2562, 4482, 643, 2563, 4483, 644, 2564, 4484, 645,
	2565, 4485, 646, 2566, 4486, 647, 2567, 4487, 648, 2568, 4488, 649, 2569, 4489, 650, 2570,
	4490, 651, 2571, 4491, 652, 2572, 4492, 653, 2573, 4493, 654, 2574, 4494, 655, 2575, 4495,
	656, 2576, 4496, 657, 2577, 4497, 658, 2578, 4498, 659, 2579, 4499, 660, 2580, 4500, 661,
	2581, 4501, 662, 2582, 4502, 663, 2583, 4503, 664, 2584, 4504, 665, 2585, 4505, 666, 2586,
	4506, 667, 2587, 4507, 668, 2588, 4508, 669, 2589, 4509, 670, 2590, 4510, 671, 2591, 4511,
	672, 2592, 4512, 673, 2593, 4513, 674, 2594, 4514, 675, 2595, 4515, 676, 2596, 4516, 677,
	2597, 4517, 678, 2598, 4518, 679, 2599, 4519, 680, 2600, 4520, 681, 2601, 4521, 682, 2602,
	4522, 683, 2603, 4523, 684, 2604, 4524, 685, 2605, 4525, 686, 2606, 4526, 687, 2607, 4527,
	688, 2608, 4528, 689, 2609, 4529, 690, 2610, 4530, 691, 2611, 4531, 692, 2612, 4532, 693,
	2613, 4533, 694, 2614, 4534, 695, 2615, 4535, 696, 2616, 4536, 697, 2617, 4537, 698, 2618,
	4538, 699, 2619, 4539, 700, 2620, 4540, 701, 2621, 4541, 702, 2622, 4542, 703, 2623, 4543,
	704, 2624, 4544, 705, 2625, 4545, 706, 2626, 4546, 707, 2627, 4547, 708, 2628, 4548, 709,
	2629, 4549, 710, 2630, 4550, 711, 2631, 4551, 712, 2632, 4552, 713, 2633, 4553, 714, 2634,
	4554, 715, 2635, 4555, 716, 2636, 4556, 717, 2637, 4557, 718, 2638, 4558, 719, 2639, 4559,
	720, 2640, 4560, 721, 2641, 4561, 722, 2642, 4562, 723, 2643, 4563, 724, 2644, 4564, 725,
	2645, 4565, 726, 2646, 4566, 727, 2647, 4567, 728, 2648, 4568, 729, 2649, 4569, 730, 2650,
	4570, 731, 2651, 4571, 732, 2652, 4572, 733, 2653, 4573, 734, 2654, 4574, 735, 2655, 4575,
	736, 2656, 4576, 737, 2657, 4577, 738, 2658, 4578, 739, 2659, 4579, 740, 2660, 4580, 741,
	2661, 4581, 742, 2662, 4582, 743, 2663, 4583, 744, 2664, 4584, 745, 2665, 4585, 746, 2666,
	4586, 747, 2667, 4587, 748, 2668, 4588, 749, 2669, 4589, 750, 2670, 4590, 751, 2671, 4591,
	752, 2672, 4592, 753, 2673, 4593, 754, 2674, 4594, 755, 2675, 4595, 756, 2676, 4596, 757,
	2677, 4597, 758, 2678, 4598, 759, 2679, 4599, 760, 2680, 4600, 761, 2681, 4601, 762, 2682,
	4602, 763, 2683, 4603, 764, 2684, 4604, 765, 2685, 4605, 766, 2686, 4606, 767, 2687, 4607,
	768, 2688, 4608, 769, 2689, 4609, 770, 2690, 4610, 771, 2691, 4611, 772, 2692, 4612, 773,
	2693, 4613, 774, 2694, 4614, 775, 2695, 4615, 776, 2696, 4616, 777, 2697, 4617, 778, 2698,
	4618, 779, 2699, 4619, 780, 2700, 4620, 781, 2701, 4621, 782, 2702, 4622, 783, 2703, 4623,
	784, 2704, 4624, 785, 2705, 4625, 786, 2706, 4626, 787, 2707, 4627, 788, 2708, 4628, 789,
	2709, 4629, 790, 2710, 4630, 791, 2711, 4631, 792, 2712, 4632, 793, 2713, 4633, 794, 2714,
	4634, 795, 2715, 4635, 796, 2716, 4636, 797, 2717, 4637, 798, 2718, 4638, 799, 2719, 4639,
	800, 2720, 4640, 801, 2721, 4641, 802, 2722, 4642, 803, 2723, 4643, 804, 2724, 4644, 805,
	2725, 4645, 806, 2726, 4646, 807, 2727, 4647, 808, 2728, 4648, 809, 2729, 4649, 810, 2730,
	4650, 811, 2731, 4651, 812, 2732, 4652, 813, 2733, 4653, 814, 2734, 4654, 815, 2735, 4655,
	816, 2736, 4656, 817, 2737, 4657, 818, 2738, 4658, 819, 2739, 4659, 820, 2740, 4660, 821,
	2741, 4661, 822, 2742, 4662, 823, 2743, 4663, 824, 2744, 4664, 825, 2745, 4665, 826, 2746,
	4666, 827, 2747, 4667, 828, 2748, 4668, 829, 2749, 4669, 830, 2750, 4670, 831, 2751, 4671,
	832, 2752, 4672, 833, 2753, 4673, 834, 2754, 4674, 835, 2755, 4675, 836, 2756, 4676, 837,
	2757, 4677, 838, 2758, 4678, 839, 2759, 4679, 840, 2760, 4680, 841, 2761, 4681, 842, 2762,
	4682, 843, 2763, 4683, 844, 2764, 4684, 845, 2765, 4685, 846, 2766, 4686, 847, 2767, 4687,
	848, 2768, 4688, 849, 2769, 4689, 850, 2770, 4690, 851, 2771, 4691, 852, 2772, 4692, 853,
	2773, 4693, 854, 2774, 4694, 855, 2775, 4695, 856, 2776, 4696, 857, 2777, 4697, 858, 2778,
	4698, 859, 2779, 4699, 860, 2780, 4700, 861, 2781, 4701, 862, 2782, 4702, 863, 2783, 4703,
	864, 2784, 4704, 865, 2785, 4705, 866, 2786, 4706, 867, 2787, 4707, 868, 2788, 4708, 869,
	2789, 4709, 870, 2790, 4710, 871, 2791, 4711, 872, 2792, 4712, 873, 2793, 4713, 874, 2794,
	4714, 875, 2795, 4715, 876, 2796, 4716, 877, 2797, 4717, 878, 2798, 4718, 879, 2799, 4719,
	880, 2800, 4720, 881, 2801, 4721, 882, 2802, 4722, 883, 2803, 4723, 884, 2804, 4724, 885,
	2805, 4725, 886, 2806, 4726, 887, 2807, 4727, 888, 2808, 4728, 889, 2809, 4729, 890, 2810,
	4730, 891, 2811, 4731, 892, 2812, 4732, 893, 2813, 4733, 894, 2814, 4734, 895, 2815, 4735,
	896, 2816, 4736, 897, 2817, 4737, 898, 2818, 4738, 899, 2819, 4739, 900, 2820, 4740, 901,
	2821, 4741, 902, 2822, 4742, 903, 2823, 4743, 904, 2824, 4744, 905, 2825, 4745, 906, 2826,
	4746, 907, 2827, 4747, 908, 2828, 4748, 909, 2829, 4749, 910, 2830, 4750, 911, 2831, 4751,
	912, 2832, 4752, 913, 2833, 4753, 914, 2834, 4754, 915, 2835, 4755, 916, 2836, 4756, 917,
	2837, 4757, 918, 2838, 4758, 919, 2839, 4759, 920, 2840, 4760, 921, 2841, 4761, 922, 2842,
	4762, 923, 2843, 4763, 924, 2844, 4764, 925, 2845, 4765, 926, 2846, 4766, 927, 2847, 4767,
	928, 2848, 4768, 929, 2849, 4769, 930, 2850, 4770, 931, 2851, 4771, 932, 2852, 4772, 933,
	2853, 4773, 934, 2854, 4774, 935, 2855, 4775, 936, 2856, 4776, 937, 2857, 4777, 938, 2858,
	4778, 939, 2859, 4779, 940, 2860, 4780, 941, 2861, 4781, 942, 2862, 4782, 943, 2863, 4783,
	944, 2864, 4784, 945, 2865, 4785, 946, 2866, 4786, 947, 2867, 4787, 948, 2868, 4788, 949,
	2869, 4789, 950, 2870, 4790, 951, 2871, 4791, 952, 2872, 4792, 953, 2873, 4793, 954, 2874,
	4794, 955, 2875, 4795, 956, 2876, 4796, 957, 2877, 4797, 958, 2878, 4798, 959, 2879, 4799,
	960, 2880, 4800, 961, 2881, 4801, 962, 2882, 4802, 963, 2883, 4803, 964, 2884, 4804, 965,
	2885, 4805, 966, 2886, 4806, 967, 2887, 4807, 968, 2888, 4808, 969, 2889, 4809, 970, 2890,
	4810, 971, 2891, 4811, 972, 2892, 4812, 973, 2893, 4813, 974, 2894, 4814, 975, 2895, 4815,
	976, 2896, 4816, 977, 2897, 4817, 978, 2898, 4818, 979, 2899, 4819, 980, 2900, 4820, 981,
	2901, 4821, 982, 2902, 4822, 983, 2903, 4823, 984, 2904, 4824, 985, 2905, 4825, 986, 2906,
	4826, 987, 2907, 4827, 988, 2908, 4828, 989, 2909, 4829, 990, 2910, 4830, 991, 2911, 4831,
	992, 2912, 4832, 993, 2913, 4833, 994, 2914, 4834, 995, 2915, 4835, 996, 2916, 4836, 997,
	2917, 4837, 998, 2918, 4838, 999, 2919, 4839, 1000, 2920, 4840, 1001, 2921, 4841, 1002, 2922,
	4842, 1003, 2923, 4843, 1004, 2924, 4844, 1005, 2925, 4845, 1006, 2926, 4846, 1007, 2927, 4847,
	1008, 2928, 4848, 1009, 2929, 4849, 1010, 2930, 4850, 1011, 2931, 4851, 1012, 2932, 4852, 1013,
	2933, 4853, 1014, 2934, 4854, 1015, 2935, 4855, 1016, 2936, 4856, 1017, 2937, 4857, 1018, 2938,
	4858, 1019, 2939, 4859, 1020, 2940, 4860, 1021, 2941, 4861, 1022, 2942, 4862, 1023, 2943, 4863,
	1024, 2944, 4864, 1025, 2945, 4865, 1026, 2946, 4866, 1027, 2947, 4867, 1028, 2948, 4868, 1029,
	2949, 4869, 1030, 2950, 4870, 1031, 2951, 4871, 1032, 2952, 4872, 1033, 2953, 4873, 1034, 2954,
	4874, 1035, 2955, 4875, 1036, 2956, 4876, 1037, 2957, 4877, 1038, 2958, 4878, 1039, 2959, 4879,
	1040, 2960, 4880, 1041, 2961, 4881, 1042, 2962, 4882, 1043, 2963, 4883, 1044, 2964, 4884, 1045,
	2965, 4885, 1046, 2966, 4886, 1047, 2967, 4887, 1048, 2968, 4888, 1049, 2969, 4889, 1050, 2970,
	4890, 1051, 2971, 4891, 1052, 2972, 4892, 1053, 2973, 4893, 1054, 2974, 4894, 1055, 2975, 4895,
	1056, 2976, 4896, 1057, 2977, 4897, 1058, 2978, 4898, 1059, 2979, 4899, 1060, 2980, 4900, 1061,
	2981, 4901, 1062, 2982, 4902, 1063, 2983, 4903, 1064, 2984, 4904, 1065, 2985, 4905, 1066, 2986,
	4906, 1067, 2987, 4907, 1068, 2988, 4908, 1069, 2989, 4909, 1070, 2990, 4910, 1071, 2991, 4911,
	1072, 2992, 4912, 1073, 2993, 4913, 1074, 2994, 4914, 1075, 2995, 4915, 1076, 2996, 4916, 1077,
	2997, 4917, 1078, 2998, 4918, 1079, 2999, 4919, 1080, 3000, 4920, 1081, 3001, 4921, 1082, 3002,
	4922, 1083, 3003, 4923, 1084, 3004, 4924, 1085, 3005, 4925, 1086, 3006, 4926, 1087, 3007, 4927,
	1088, 3008, 4928, 1089, 3009, 4929, 1090, 3010, 4930, 1091, 3011, 4931, 1092, 3012, 4932, 1093,
	3013, 4933, 1094, 3014, 4934, 1095, 3015, 4935, 1096, 3016, 4936, 1097, 3017, 4937, 1098, 3018,
	4938, 1099, 3019, 4939, 1100, 3020, 4940, 1101, 3021, 4941, 1102, 3022, 4942, 1103, 3023, 4943,
	1104, 3024, 4944, 1105, 3025, 4945, 1106, 3026, 4946, 1107, 3027, 4947, 1108, 3028, 4948, 1109,
	3029, 4949, 1110, 3030, 4950, 1111, 3031, 4951, 1112, 3032, 4952, 1113, 3033, 4953, 1114, 3034,
	4954, 1115, 3035, 4955, 1116, 3036, 4956, 1117, 3037, 4957, 1118, 3038, 4958, 1119, 3039, 4959,
	1120, 3040, 4960, 1121, 3041, 4961, 1122, 3042, 4962, 1123, 3043, 4963, 1124, 3044, 4964, 1125,
	3045, 4965, 1126, 3046, 4966, 1127, 3047, 4967, 1128, 3048, 4968, 1129, 3049, 4969, 1130, 3050,
	4970, 1131, 3051, 4971, 1132, 3052, 4972, 1133, 3053, 4973, 1134, 3054, 4974, 1135, 3055, 4975,
	1136, 3056, 4976, 1137, 3057, 4977, 1138, 3058, 4978, 1139, 3059, 4979, 1140, 3060, 4980, 1141,
	3061, 4981, 1142, 3062, 4982, 1143, 3063, 4983, 1144, 3064, 4984, 1145, 3065, 4985, 1146, 3066,
	4986, 1147, 3067, 4987, 1148, 3068, 4988, 1149, 3069, 4989, 1150, 3070, 4990, 1151, 3071, 4991,
	1152, 3072, 4992, 1153, 3073, 4993, 1154, 3074, 4994, 1155, 3075, 4995, 1156, 3076, 4996, 1157,
	3077, 4997, 1158, 3078, 4998, 1159, 3079, 4999, 1160, 3080, 5000, 1161, 3081, 5001, 1162, 3082,
	5002, 1163, 3083, 5003, 1164, 3084, 5004, 1165, 3085, 5005, 1166, 3086, 5006, 1167, 3087, 5007,
	1168, 3088, 5008, 1169, 3089, 5009, 1170, 3090, 5010, 1171, 3091, 5011, 1172, 3092, 5012, 1173,
	3093, 5013, 1174, 3094, 5014, 1175, 3095, 5015, 1176, 3096, 5016, 1177, 3097, 5017, 1178, 3098,
	5018, 1179, 3099, 5019, 1180, 3100, 5020, 1181, 3101, 5021, 1182, 3102, 5022, 1183, 3103, 5023,
	1184, 3104, 5024, 1185, 3105, 5025, 1186, 3106, 5026, 1187, 3107, 5027, 1188, 3108, 5028, 1189,
	3109, 5029, 1190, 3110, 5030, 1191, 3111, 5031, 1192, 3112, 5032, 1193, 3113, 5033, 1194, 3114,
	5034, 1195, 3115, 5035, 1196, 3116, 5036, 1197, 3117, 5037, 1198, 3118, 5038, 1199, 3119, 5039,
	1200, 3120, 5040, 1201, 3121, 5041, 1202, 3122, 5042, 1203, 3123, 5043, 1204, 3124, 5044, 1205,
	3125, 5045, 1206, 3126, 5046, 1207, 3127, 5047, 1208, 3128, 5048, 1209, 3129, 5049, 1210, 3130,
	5050, 1211, 3131, 5051, 1212, 3132, 5052, 1213, 3133, 5053, 1214, 3134, 5054, 1215, 3135, 5055,
	1216, 3136, 5056, 1217, 3137, 5057, 1218, 3138, 5058, 1219, 3139, 5059, 1220, 3140, 5060, 1221,
	3141, 5061, 1222, 3142, 5062, 1223, 3143, 5063, 1224, 3144, 5064, 1225, 3145, 5065, 1226, 3146,
	5066, 1227, 3147, 5067, 1228, 3148, 5068, 1229, 3149, 5069, 1230, 3150, 5070, 1231, 3151, 5071,
	1232, 3152, 5072, 1233, 3153, 5073, 1234, 3154, 5074, 1235, 3155, 5075, 1236, 3156, 5076, 1237,
	3157, 5077, 1238, 3158, 5078, 1239, 3159, 5079, 1240, 3160, 5080, 1241, 3161, 5081, 1242, 3162,
	5082, 1243, 3163, 5083, 1244, 3164, 5084, 1245, 3165, 5085, 1246, 3166, 5086, 1247, 3167, 5087,
	1248, 3168, 5088, 1249, 3169, 5089, 1250, 3170, 5090, 1251, 3171, 5091, 1252, 3172, 5092, 1253,
	3173, 5093, 1254, 3174, 5094, 1255, 3175, 5095, 1256, 3176, 5096, 1257, 3177, 5097, 1258, 3178,
	5098, 1259, 3179, 5099, 1260, 3180, 5100, 1261, 3181, 5101, 1262, 3182, 5102, 1263, 3183, 5103,
	1264, 3184, 5104, 1265, 3185, 5105, 1266, 3186, 5106, 1267, 3187, 5107, 1268, 3188, 5108, 1269,
	3189, 5109, 1270, 3190, 5110, 1271, 3191, 5111, 1272, 3192, 5112, 1273, 3193, 5113, 1274, 3194,
	5114, 1275, 3195, 5115, 1276, 3196, 5116, 1277, 3197, 5117, 1278, 3198, 5118, 1279, 3199, 5119,
	1280, 3200, 5120, 1281, 3201, 5121, 1282, 3202, 5122, 1283, 3203, 5123, 1284, 3204, 5124, 1285,
	3205, 5125, 1286, 3206, 5126, 1287, 3207, 5127, 1288, 3208, 5128, 1289, 3209, 5129, 1290, 3210,
	5130, 1291, 3211, 5131, 1292, 3212, 5132, 1293, 3213, 5133, 1294, 3214, 5134, 1295, 3215, 5135,
	1296, 3216, 5136, 1297, 3217, 5137, 1298, 3218, 5138, 1299, 3219, 5139, 1300, 3220, 5140, 1301,
	3221, 5141, 1302, 3222, 5142, 1303, 3223, 5143, 1304, 3224, 5144, 1305, 3225, 5145, 1306, 3226,
	5146, 1307, 3227, 5147, 1308, 3228, 5148, 1309, 3229, 5149, 1310, 3230, 5150, 1311, 3231, 5151,
	1312, 3232, 5152, 1313, 3233, 5153, 1314, 3234, 5154, 1315, 3235, 5155, 1316, 3236, 5156, 1317,
	3237, 5157, 1318, 3238, 5158, 1319, 3239, 5159, 1320, 3240, 5160, 1321, 3241, 5161, 1322, 3242,
	5162, 1323, 3243, 5163, 1324, 3244, 5164, 1325, 3245, 5165, 1326, 3246, 5166, 1327, 3247, 5167,
	1328, 3248, 5168, 1329, 3249, 5169, 1330, 3250, 5170, 1331, 3251, 5171, 1332, 3252, 5172, 1333,
	3253, 5173, 1334, 3254, 5174, 1335, 3255, 5175, 1336, 3256, 5176, 1337, 3257, 5177, 1338, 3258,
	5178, 1339, 3259, 5179, 1340, 3260, 5180, 1341, 3261, 5181, 1342, 3262, 5182, 1343, 3263, 5183,
	1344, 3264, 5184, 1345, 3265, 5185, 1346, 3266, 5186, 1347, 3267, 5187, 1348, 3268, 5188, 1349,
	3269, 5189, 1350, 3270, 5190, 1351, 3271, 5191, 1352, 3272, 5192, 1353, 3273, 5193, 1354, 3274,
	5194, 1355, 3275, 5195, 1356, 3276, 5196, 1357, 3277, 5197, 1358, 3278, 5198, 1359, 3279, 5199,
	1360, 3280, 5200, 1361, 3281, 5201, 1362, 3282, 5202, 1363, 3283, 5203, 1364, 3284, 5204, 1365,
	3285, 5205, 1366, 3286, 5206, 1367, 3287, 5207, 1368, 3288, 5208, 1369, 3289, 5209, 1370, 3290,
	5210, 1371, 3291, 5211, 1372, 3292, 5212, 1373, 3293, 5213, 1374, 3294, 5214, 1375, 3295, 5215,
	1376, 3296, 5216, 1377, 3297, 5217, 1378, 3298, 5218, 1379, 3299, 5219, 1380, 3300, 5220, 1381,
	3301, 5221, 1382, 3302, 5222, 1383, 3303, 5223, 1384, 3304, 5224, 1385, 3305, 5225, 1386, 3306,
	5226, 1387, 3307, 5227, 1388, 3308, 5228, 1389, 3309, 5229, 1390, 3310, 5230, 1391, 3311, 5231,
	1392, 3312, 5232, 1393, 3313, 5233, 1394, 3314, 5234, 1395, 3315, 5235, 1396, 3316, 5236, 1397,
	3317, 5237, 1398, 3318, 5238, 1399, 3319, 5239, 1400, 3320, 5240, 1401, 3321, 5241, 1402, 3322,
	5242, 1403, 3323, 5243, 1404, 3324, 5244, 1405, 3325, 5245, 1406, 3326, 5246, 1407, 3327, 5247,
	1408, 3328, 5248, 1409, 3329, 5249, 1410, 3330, 5250, 1411, 3331, 5251, 1412, 3332, 5252, 1413,
	3333, 5253, 1414, 3334, 5254, 1415, 3335, 5255, 1416, 3336, 5256, 1417, 3337, 5257, 1418, 3338,
	5258, 1419, 3339, 5259, 1420, 3340, 5260, 1421, 3341, 5261, 1422, 3342, 5262, 1423, 3343, 5263,
	1424, 3344, 5264, 1425, 3345, 5265, 1426, 3346, 5266, 1427, 3347, 5267, 1428, 3348, 5268, 1429,
	3349, 5269, 1430, 3350, 5270, 1431, 3351, 5271, 1432, 3352, 5272, 1433, 3353, 5273, 1434, 3354,
	5274, 1435, 3355, 5275, 1436, 3356, 5276, 1437, 3357, 5277, 1438, 3358, 5278, 1439, 3359, 5279,
	1440, 3360, 5280, 1441, 3361, 5281, 1442, 3362, 5282, 1443, 3363, 5283, 1444, 3364, 5284, 1445,
	3365, 5285, 1446, 3366, 5286, 1447, 3367, 5287, 1448, 3368, 5288, 1449, 3369, 5289, 1450, 3370,
	5290, 1451, 3371, 5291, 1452, 3372, 5292, 1453, 3373, 5293, 1454, 3374, 5294, 1455, 3375, 5295,
	1456, 3376, 5296, 1457, 3377, 5297, 1458, 3378, 5298, 1459, 3379, 5299, 1460, 3380, 5300, 1461,
	3381, 5301, 1462, 3382, 5302, 1463, 3383, 5303, 1464, 3384, 5304, 1465, 3385, 5305, 1466, 3386,
	5306, 1467, 3387, 5307, 1468, 3388, 5308, 1469, 3389, 5309, 1470, 3390, 5310, 1471, 3391, 5311,
	1472, 3392, 5312, 1473, 3393, 5313, 1474, 3394, 5314, 1475, 3395, 5315, 1476, 3396, 5316, 1477,
	3397, 5317, 1478, 3398, 5318, 1479, 3399, 5319, 1480, 3400, 5320, 1481, 3401, 5321, 1482, 3402,
	5322, 1483, 3403, 5323, 1484, 3404, 5324, 1485, 3405, 5325, 1486, 3406, 5326, 1487, 3407, 5327,
	1488, 3408, 5328, 1489, 3409, 5329, 1490, 3410, 5330, 1491, 3411, 5331, 1492, 3412, 5332, 1493,
	3413, 5333, 1494, 3414, 5334, 1495, 3415, 5335, 1496, 3416, 5336, 1497, 3417, 5337, 1498, 3418,
	5338, 1499, 3419, 5339, 1500, 3420, 5340, 1501, 3421, 5341, 1502, 3422, 5342, 1503, 3423, 5343,
	1504, 3424, 5344, 1505, 3425, 5345, 1506, 3426, 5346, 1507, 3427, 5347, 1508, 3428, 5348, 1509,
	3429, 5349, 1510, 3430, 5350, 1511, 3431, 5351, 1512, 3432, 5352, 1513, 3433, 5353, 1514, 3434,
	5354, 1515, 3435, 5355, 1516, 3436, 5356, 1517, 3437, 5357, 1518, 3438, 5358, 1519, 3439, 5359,
	1520, 3440, 5360, 1521, 3441, 5361, 1522, 3442, 5362, 1523, 3443, 5363, 1524, 3444, 5364, 1525,
	3445, 5365, 1526, 3446, 5366, 1527, 3447, 5367, 1528, 3448, 5368, 1529, 3449, 5369, 1530, 3450,
	5370, 1531, 3451, 5371, 1532, 3452, 5372, 1533, 3453, 5373, 1534, 3454, 5374, 1535, 3455, 5375,
	1536, 3456, 5376, 1537, 3457, 5377, 1538, 3458, 5378, 1539, 3459, 5379, 1540, 3460, 5380, 1541,
	3461, 5381, 1542, 3462, 5382, 1543, 3463, 5383, 1544, 3464, 5384, 1545, 3465, 5385, 1546, 3466,
	5386, 1547, 3467, 5387, 1548, 3468, 5388, 1549, 3469, 5389, 1550, 3470, 5390, 1551, 3471, 5391,
	1552, 3472, 5392, 1553, 3473, 5393, 1554, 3474, 5394, 1555, 3475, 5395, 1556, 3476, 5396, 1557,
	3477, 5397, 1558, 3478, 5398, 1559, 3479, 5399, 1560, 3480, 5400, 1561, 3481, 5401, 1562, 3482,
	5402, 1563, 3483, 5403, 1564, 3484, 5404, 1565, 3485, 5405, 1566, 3486, 5406, 1567, 3487, 5407,
	1568, 3488, 5408, 1569, 3489, 5409, 1570, 3490, 5410, 1571, 3491, 5411, 1572, 3492, 5412, 1573,
	3493, 5413, 1574, 3494, 5414, 1575, 3495, 5415, 1576, 3496, 5416, 1577, 3497, 5417, 1578, 3498,
	5418, 1579, 3499, 5419, 1580, 3500, 5420, 1581, 3501, 5421, 1582, 3502, 5422, 1583, 3503, 5423,
	1584, 3504, 5424, 1585, 3505, 5425, 1586, 3506, 5426, 1587, 3507, 5427, 1588, 3508, 5428, 1589,
	3509, 5429, 1590, 3510, 5430, 1591, 3511, 5431, 1592, 3512, 5432, 1593, 3513, 5433, 1594, 3514,
	5434, 1595, 3515, 5435, 1596, 3516, 5436, 1597, 3517, 5437, 1598, 3518, 5438, 1599, 3519, 5439,
	1600, 3520, 5440, 1601, 3521, 5441, 1602, 3522, 5442, 1603, 3523, 5443, 1604, 3524, 5444, 1605,
	3525, 5445, 1606, 3526, 5446, 1607, 3527, 5447, 1608, 3528, 5448, 1609, 3529, 5449, 1610, 3530,
	5450, 1611, 3531, 5451, 1612, 3532, 5452, 1613, 3533, 5453, 1614, 3534, 5454, 1615, 3535, 5455,
	1616, 3536, 5456, 1617, 3537, 5457, 1618, 3538, 5458, 1619, 3539, 5459, 1620, 3540, 5460, 1621,
	3541, 5461, 1622, 3542, 5462, 1623, 3543, 5463, 1624, 3544, 5464, 1625, 3545, 5465, 1626, 3546,
	5466, 1627, 3547, 5467, 1628, 3548, 5468, 1629, 3549, 5469, 1630, 3550, 5470, 1631, 3551, 5471,
	1632, 3552, 5472, 1633, 3553, 5473, 1634, 3554, 5474, 1635, 3555, 5475, 1636, 3556, 5476, 1637,
	3557, 5477, 1638, 3558, 5478, 1639, 3559, 5479, 1640, 3560, 5480, 1641, 3561, 5481, 1642, 3562,
	5482, 1643, 3563, 5483, 1644, 3564, 5484, 1645, 3565, 5485, 1646, 3566, 5486, 1647, 3567, 5487,
	1648, 3568, 5488, 1649, 3569, 5489, 1650, 3570, 5490, 1651, 3571, 5491, 1652, 3572, 5492, 1653,
	3573, 5493, 1654, 3574, 5494, 1655, 3575, 5495, 1656, 3576, 5496, 1657, 3577, 5497, 1658, 3578,
	5498, 1659, 3579, 5499, 1660, 3580, 5500, 1661, 3581, 5501, 1662, 3582, 5502, 1663, 3583, 5503,
	1664, 3584, 5504, 1665, 3585, 5505, 1666, 3586, 5506, 1667, 3587, 5507, 1668, 3588, 5508, 1669,
	3589, 5509, 1670, 3590, 5510, 1671, 3591, 5511, 1672, 3592, 5512, 1673, 3593, 5513, 1674, 3594,
	5514, 1675, 3595, 5515, 1676, 3596, 5516, 1677, 3597, 5517, 1678, 3598, 5518, 1679, 3599, 5519,
	1680, 3600, 5520, 1681, 3601, 5521, 1682, 3602, 5522, 1683, 3603, 5523, 1684, 3604, 5524, 1685,
	3605, 5525, 1686, 3606, 5526, 1687, 3607, 5527, 1688, 3608, 5528, 1689, 3609, 5529, 1690, 3610,
	5530, 1691, 3611, 5531, 1692, 3612, 5532, 1693, 3613, 5533, 1694, 3614, 5534, 1695, 3615, 5535,
	1696, 3616, 5536, 1697, 3617, 5537, 1698, 3618, 5538, 1699, 3619, 5539, 1700, 3620, 5540, 1701,
	3621, 5541, 1702, 3622, 5542, 1703, 3623, 5543, 1704, 3624, 5544, 1705, 3625, 5545, 1706, 3626,
	5546, 1707, 3627, 5547, 1708, 3628, 5548, 1709, 3629, 5549, 1710, 3630, 5550, 1711, 3631, 5551,
	1712, 3632, 5552, 1713, 3633, 5553, 1714, 3634, 5554, 1715, 3635, 5555, 1716, 3636, 5556, 1717,
	3637, 5557, 1718, 3638, 5558, 1719, 3639, 5559, 1720, 3640, 5560, 1721, 3641, 5561, 1722, 3642,
	5562, 1723, 3643, 5563, 1724, 3644, 5564, 1725, 3645, 5565, 1726, 3646, 5566, 1727, 3647, 5567,
	1728, 3648, 5568, 1729, 3649, 5569, 1730, 3650, 5570, 1731, 3651, 5571, 1732, 3652, 5572, 1733,
	3653, 5573, 1734, 3654, 5574, 1735, 3655, 5575, 1736, 3656, 5576, 1737, 3657, 5577, 1738, 3658,
	5578, 1739, 3659, 5579, 1740, 3660, 5580, 1741, 3661, 5581, 1742, 3662, 5582, 1743, 3663, 5583,
	1744, 3664, 5584, 1745, 3665, 5585, 1746, 3666, 5586, 1747, 3667, 5587, 1748, 3668, 5588, 1749,
	3669, 5589, 1750, 3670, 5590, 1751, 3671, 5591, 1752, 3672, 5592, 1753, 3673, 5593, 1754, 3674,
	5594, 1755, 3675, 5595, 1756, 3676, 5596, 1757, 3677, 5597, 1758, 3678, 5598, 1759, 3679, 5599,
	1760, 3680, 5600, 1761, 3681, 5601, 1762, 3682, 5602, 1763, 3683, 5603, 1764, 3684, 5604, 1765,
	3685, 5605, 1766, 3686, 5606, 1767, 3687, 5607, 1768, 3688, 5608, 1769, 3689, 5609, 1770, 3690,
	5610, 1771, 3691, 5611, 1772, 3692, 5612, 1773, 3693, 5613, 1774, 3694, 5614, 1775, 3695, 5615,
	1776, 3696, 5616, 1777, 3697, 5617, 1778, 3698, 5618, 1779, 3699, 5619, 1780, 3700, 5620, 1781,
	3701, 5621, 1782, 3702, 5622, 1783, 3703, 5623, 1784, 3704, 5624, 1785, 3705, 5625, 1786, 3706,
	5626, 1787, 3707, 5627, 1788, 3708, 5628, 1789, 3709, 5629, 1790, 3710, 5630, 1791, 3711, 5631,
	1792, 3712, 5632, 1793, 3713, 5633, 1794, 3714, 5634, 1795, 3715, 5635, 1796, 3716, 5636, 1797,
	3717, 5637, 1798, 3718, 5638, 1799, 3719, 5639, 1800, 3720, 5640, 1801, 3721, 5641, 1802, 3722,
	5642, 1803, 3723, 5643, 1804, 3724, 5644, 1805, 3725, 5645, 1806, 3726, 5646, 1807, 3727, 5647,
	1808, 3728, 5648, 1809, 3729, 5649, 1810, 3730, 5650, 1811, 3731, 5651, 1812, 3732, 5652, 1813,
	3733, 5653, 1814, 3734, 5654, 1815, 3735, 5655, 1816, 3736, 5656, 1817, 3737, 5657, 1818, 3738,
	5658, 1819, 3739, 5659, 1820, 3740, 5660, 1821, 3741, 5661, 1822, 3742, 5662, 1823, 3743, 5663,
	1824, 3744, 5664, 1825, 3745, 5665, 1826, 3746, 5666, 1827, 3747, 5667, 1828, 3748, 5668, 1829,
	3749, 5669, 1830, 3750, 5670, 1831, 3751, 5671, 1832, 3752, 5672, 1833, 3753, 5673, 1834, 3754,
	5674, 1835, 3755, 5675, 1836, 3756, 5676, 1837, 3757, 5677, 1838, 3758, 5678, 1839, 3759, 5679,
	1840, 3760, 5680, 1841, 3761, 5681, 1842, 3762, 5682, 1843, 3763, 5683, 1844, 3764, 5684, 1845,
	3765, 5685, 1846, 3766, 5686, 1847, 3767, 5687, 1848, 3768, 5688, 1849, 3769, 5689, 1850, 3770,
	5690, 1851, 3771, 5691, 1852, 3772, 5692, 1853, 3773, 5693, 1854, 3774, 5694, 1855, 3775, 5695,
	1856, 3776, 5696, 1857, 3777, 5697, 1858, 3778, 5698, 1859, 3779, 5699, 1860, 3780, 5700, 1861,
	3781, 5701, 1862, 3782, 5702, 1863, 3783, 5703, 1864, 3784, 5704, 1865, 3785, 5705, 1866, 3786,
	5706, 1867, 3787, 5707, 1868, 3788, 5708, 1869, 3789, 5709, 1870, 3790, 5710, 1871, 3791, 5711,
	1872, 3792, 5712, 1873, 3793, 5713, 1874, 3794, 5714, 1875, 3795, 5715, 1876, 3796, 5716, 1877,
	3797, 5717, 1878, 3798, 5718, 1879, 3799, 5719, 1880, 3800, 5720, 1881, 3801, 5721, 1882, 3802,
	5722, 1883, 3803, 5723, 1884, 3804, 5724, 1885, 3805, 5725, 1886, 3806, 5726, 1887, 3807, 5727,
	1888, 3808, 5728, 1889, 3809, 5729, 1890, 3810, 5730, 1891, 3811, 5731, 1892, 3812, 5732, 1893,
	3813, 5733, 1894, 3814, 5734, 1895, 3815, 5735, 1896, 3816, 5736, 1897, 3817, 5737, 1898, 3818,
	5738, 1899, 3819, 5739, 1900, 3820, 5740, 1901, 3821, 5741, 1902, 3822, 5742, 1903, 3823, 5743,
	1904, 3824, 5744, 1905, 3825, 5745, 1906, 3826, 5746, 1907, 3827, 5747, 1908, 3828, 5748, 1909,
	3829, 5749, 1910, 3830, 5750, 1911, 3831, 5751, 1912, 3832, 5752, 1913, 3833, 5753, 1914, 3834,
	5754, 1915, 3835, 5755, 1916, 3836, 5756, 1917, 3837, 5757, 1918, 3838, 5758, 1919, 3839, 5759,
}
